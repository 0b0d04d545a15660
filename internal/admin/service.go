package admin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dalbodeule/grip-gate/ent"
	entroute "github.com/dalbodeule/grip-gate/ent/route"
	"github.com/dalbodeule/grip-gate/internal/domainmap"
	"github.com/dalbodeule/grip-gate/internal/logging"
)

// RouteService 는 라우트 등록/해제 및 조회를 담당하는 비즈니스 로직 인터페이스입니다.
// 실제 구현에서는 ent.Client(PostgreSQL)를 주입받아 동작하게 됩니다.
type RouteService interface {
	// RegisterRoute 는 새로운 라우트를 등록합니다. SigIss 가 주어지고 SigKey 를
	// 비워 두면 라우트별 서명 키(랜덤 64자)를 생성해 반환합니다.
	RegisterRoute(ctx context.Context, in RegisterRouteInput) (sigKey string, err error)

	// UnregisterRoute 는 도메인의 라우트 등록을 해제합니다.
	UnregisterRoute(ctx context.Context, domain string) error

	// GetRoute 는 주어진 도메인에 대한 전체 엔티티 정보를 반환합니다.
	// 존재하지 않으면 ErrRouteNotFound 를 반환합니다.
	GetRoute(ctx context.Context, domain string) (*ent.Route, error)

	// ListRoutes 는 등록된 모든 라우트를 반환합니다.
	ListRoutes(ctx context.Context) ([]*ent.Route, error)
}

// RegisterRouteInput 은 라우트 등록 요청입니다.
type RegisterRouteInput struct {
	Domain        string // FQDN 또는 "*"
	Targets       string // "host:port[,ssl][,trusted][,insecure]" 공백 구분 목록
	ChannelPrefix string
	SigIss        string
	SigKey        string // SigIss 가 있을 때 비워 두면 생성
	Memo          string
}

// RouteServiceImpl 는 ent.Client 를 사용해 RouteService 를 구현한 구조체입니다.
type RouteServiceImpl struct {
	logger logging.Logger
	client *ent.Client

	// invalidate 는 라우트 변경 시 조회 캐시를 무효화합니다. nil 허용.
	invalidate func(domain string)
}

// NewRouteService 는 기본 RouteService 구현체를 생성합니다.
func NewRouteService(logger logging.Logger, client *ent.Client, invalidate func(domain string)) RouteService {
	return &RouteServiceImpl{
		logger:     logger.With(logging.Fields{"component": "route_service"}),
		client:     client,
		invalidate: invalidate,
	}
}

// RegisterRoute 는 새 라우트를 등록하고, 필요 시 서명 키를 생성해 반환합니다.
func (s *RouteServiceImpl) RegisterRoute(ctx context.Context, in RegisterRouteInput) (string, error) {
	d := normalizeDomain(in.Domain)
	if d == "" {
		return "", ErrInvalidDomain
	}

	targets := strings.TrimSpace(in.Targets)
	if targets == "" {
		return "", ErrInvalidTargets
	}
	// 저장 전에 타겟 문법을 검증합니다. 잘못된 라우트가 조회 시점에
	// 발견되면 세션이 전부 502 로 빠지기 때문입니다.
	for _, raw := range strings.Fields(targets) {
		if _, err := domainmap.ParseTarget(raw); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidTargets, err)
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	sigKey := strings.TrimSpace(in.SigKey)
	if in.SigIss != "" && sigKey == "" {
		var err error
		sigKey, err = generateSigKey(64)
		if err != nil {
			return "", fmt.Errorf("generate sig key: %w", err)
		}
	}

	_, err := s.client.Route.Create().
		SetDomain(d).
		SetTargets(targets).
		SetChannelPrefix(in.ChannelPrefix).
		SetSigIss(in.SigIss).
		SetSigKey(sigKey).
		SetMemo(in.Memo).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return "", ErrRouteExists
		}
		s.logger.Error("failed to register route", logging.Fields{
			"domain": d,
			"error":  err.Error(),
		})
		return "", fmt.Errorf("register route: %w", err)
	}

	if s.invalidate != nil {
		s.invalidate(d)
	}

	s.logger.Info("route registered", logging.Fields{
		"domain":         d,
		"targets":        targets,
		"sig_key_masked": maskKey(sigKey),
	})

	return sigKey, nil
}

// UnregisterRoute 는 도메인의 라우트를 삭제합니다.
func (s *RouteServiceImpl) UnregisterRoute(ctx context.Context, domain string) error {
	d := normalizeDomain(domain)
	if d == "" {
		return ErrInvalidDomain
	}

	if ctx == nil {
		ctx = context.Background()
	}

	n, err := s.client.Route.Delete().
		Where(entroute.DomainEQ(d)).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to unregister route", logging.Fields{
			"domain": d,
			"error":  err.Error(),
		})
		return fmt.Errorf("unregister route: %w", err)
	}
	if n == 0 {
		return ErrRouteNotFound
	}

	if s.invalidate != nil {
		s.invalidate(d)
	}

	s.logger.Info("route unregistered", logging.Fields{
		"domain": d,
	})

	return nil
}

// GetRoute 는 주어진 도메인에 대한 전체 엔티티 정보를 반환합니다.
func (s *RouteServiceImpl) GetRoute(ctx context.Context, domain string) (*ent.Route, error) {
	d := normalizeDomain(domain)
	if d == "" {
		return nil, ErrInvalidDomain
	}

	if ctx == nil {
		ctx = context.Background()
	}

	row, err := s.client.Route.Query().
		Where(entroute.DomainEQ(d)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrRouteNotFound
		}
		s.logger.Error("failed to get route", logging.Fields{
			"domain": d,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("get route: %w", err)
	}
	return row, nil
}

// ListRoutes 는 등록된 모든 라우트를 도메인 순으로 반환합니다.
func (s *RouteServiceImpl) ListRoutes(ctx context.Context) ([]*ent.Route, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.client.Route.Query().
		Order(ent.Asc(entroute.FieldDomain)).
		All(ctx)
	if err != nil {
		s.logger.Error("failed to list routes", logging.Fields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return rows, nil
}

// generateSigKey 는 랜덤 바이트를 생성하여 hex 문자열로 인코딩합니다.
func generateSigKey(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid key length: %d", length)
	}

	// hex 인코딩 결과 길이가 length 이상이 되도록 필요한 바이트 수 계산
	byteLen := (length + 1) / 2
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := hex.EncodeToString(b)
	if len(s) > length {
		s = s[:length]
	}
	return s, nil
}

// normalizeDomain 은 도메인 문자열을 소문자/공백 트리밍하고, 간단한 형식을 검증합니다.
// 와일드카드 "*" 는 기본 라우트로 허용됩니다.
func normalizeDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	if d == "" {
		return ""
	}
	if d == "*" {
		return d
	}
	// 매우 단순한 FQDN 검증: 점(.) 포함 및 공백 없음만 확인.
	if !strings.Contains(d, ".") {
		return ""
	}
	if strings.ContainsAny(d, " \t\r\n") {
		return ""
	}
	return d
}

// maskKey 는 로그 등에 사용할 수 있도록 서명 키를 마스킹합니다.
func maskKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) <= 8 {
		if key == "" {
			return ""
		}
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// 에러 타입 정의.
var (
	// ErrInvalidDomain 은 도메인 문자열이 비어있거나 형식이 잘못된 경우를 나타냅니다.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidTargets 는 타겟 목록이 비어있거나 문법이 잘못된 경우를 나타냅니다.
	ErrInvalidTargets = errors.New("invalid targets")

	// ErrRouteExists 는 도메인에 이미 라우트가 등록된 경우를 나타냅니다.
	ErrRouteExists = errors.New("route already exists")

	// ErrRouteNotFound 는 도메인에 해당하는 라우트가 없는 경우를 나타냅니다.
	ErrRouteNotFound = errors.New("route not found")
)
