package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// LoggingConfig 는 공통 로그 설정을 담습니다.
// Loki push 에 필요한 엔드포인트/인증/정적 라벨 등을 포함합니다.
type LoggingConfig struct {
	Level string     // 예: "debug", "info", "warn", "error"
	Loki  LokiConfig // Loki 관련 설정
}

// LokiConfig 는 Loki HTTP push 설정을 담습니다.
type LokiConfig struct {
	Enable       bool              // true 인 경우 Loki 로도 push
	Endpoint     string            // 예: "http://loki:3100/loki/api/v1/push"
	TenantID     string            // multi-tenant Loki 사용 시 X-Scope-OrgID 등에 사용
	Username     string            // basic auth 사용자명(선택)
	Password     string            // basic auth 비밀번호(선택)
	StaticLabels map[string]string // 모든 로그에 공통으로 붙일 라벨 (app=grip-gate,env=dev 등)
}

// XffRuleConfig 는 X-Forwarded-For 체인 가공 규칙 설정입니다.
// "truncate[:append]" 형식으로 파싱되며, truncate 가 -1 이면 잘라내지 않습니다.
//
// 예:
//
//	GRIP_XFF_UNTRUSTED="0:append"  -> 기존 체인을 전부 버리고 peer 주소만 남김
//	GRIP_XFF_TRUSTED="-1:append"   -> 기존 체인을 유지하고 peer 주소를 뒤에 추가
type XffRuleConfig struct {
	Truncate int  // 유지할 마지막 엔트리 수, -1 이면 무제한
	Append   bool // true 이면 peer 주소를 체인 끝에 추가
}

// ServerConfig 는 gateway 서버 프로세스 설정을 담습니다.
type ServerConfig struct {
	HTTPListen  string // 예: ":80"
	HTTPSListen string // 예: ":443"
	AdminListen string // admin API + /metrics 리스너, 예: "127.0.0.1:5100"

	// 라우트 소스. RoutesFile 과 DB DSN 은 동시에 켤 수 있으며 DB 가 우선합니다.
	RoutesFile string // routes 파일 경로 (예: "./routes")

	// Grip-Sig 서명 기본값. 라우트에 issuer/key 가 둘 다 지정되면 그 값이 우선합니다.
	SigIss string // 기본 issuer
	SigKey string // 기본 서명 키

	// UpstreamKey 가 설정되어 있으면 inbound Grip-Sig 를 이 키로 검증해
	// 신뢰된 상위 프록시에서 온 요청인지 판별합니다.
	UpstreamKey string

	UseXForwardedProtocol bool // true 이면 X-Forwarded-Protocol 헤더를 재작성

	XffUntrusted XffRuleConfig // 일반 요청에 적용할 XFF 규칙
	XffTrusted   XffRuleConfig // 신뢰된 프록시 경유 요청에 적용할 XFF 규칙

	// HandoffAddr 는 long-poll/streaming 서브시스템의 gRPC 주소입니다.
	// 비어 있으면 accept handoff 는 cannotAccept 로 처리됩니다.
	HandoffAddr string

	AdminToken string // admin API bearer 토큰, 비어 있으면 admin API 비활성화

	Debug bool // true 이면 디버그 모드

	Logging LoggingConfig // 서버용 로그 설정
}

var (
	dotenvOnce sync.Once
	dotenvErr  error
)

// loadDotEnvOnce 는 현재 작업 디렉터리의 .env 파일을 한 번만 읽어서 os.Environ 에 주입합니다.
// - KEY=VALUE, export KEY=VALUE 형식을 지원
// - # 으로 시작하는 줄은 주석으로 간주합니다.
func loadDotEnvOnce() {
	dotenvOnce.Do(func() {
		fi, err := os.Stat(".env")
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// .env 가 없으면 조용히 무시
				return
			}
			dotenvErr = err
			return
		}
		if fi.IsDir() {
			// 디렉터리이면 무시
			return
		}

		f, err := os.Open(".env")
		if err != nil {
			dotenvErr = err
			return
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if strings.HasPrefix(line, "export ") {
				line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			// 양 끝의 작은/큰따옴표 제거
			val = strings.Trim(val, `"'`)

			if key != "" {
				// 이미 OS 환경변수에 설정된 값이 있는 경우 이를 우선시하고,
				// 비어 있는 키에 대해서만 .env 값을 주입합니다.
				if _, exists := os.LookupEnv(key); !exists {
					_ = os.Setenv(key, val)
				}
			}
		}
		if err := scanner.Err(); err != nil {
			dotenvErr = err
			return
		}
	})
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// parseKeyValueCSV 는 "k1=v1,k2=v2" 형태의 문자열을 map 으로 변환합니다.
func parseKeyValueCSV(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	m := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		v := strings.TrimSpace(kv[1])
		if k != "" {
			m[k] = v
		}
	}
	return m
}

// ParseXffRule 은 "truncate[:append]" 문자열을 XffRuleConfig 로 변환합니다.
// 빈 문자열은 {Truncate: -1, Append: false} 를 의미합니다.
//
// ParseXffRule parses "truncate[:append]" into an XffRuleConfig. An empty
// string means no truncation and no append.
func ParseXffRule(raw string) (XffRuleConfig, error) {
	rule := XffRuleConfig{Truncate: -1}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return rule, nil
	}

	parts := strings.SplitN(raw, ":", 2)
	n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return rule, fmt.Errorf("xff rule truncate: %w", err)
	}
	if n < -1 {
		return rule, fmt.Errorf("xff rule truncate out of range: %d", n)
	}
	rule.Truncate = n

	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "append":
			rule.Append = true
		case "":
		default:
			return rule, fmt.Errorf("xff rule flag: %q", parts[1])
		}
	}
	return rule, nil
}

// loadLoggingFromEnv 는 공통 로그 설정을 .env/환경변수에서 읽어옵니다.
func loadLoggingFromEnv() LoggingConfig {
	level := getEnvOrDefault("GRIP_LOG_LEVEL", "info")

	lokiEnable := getEnvBool("GRIP_LOKI_ENABLE", false)
	lokiEndpoint := os.Getenv("GRIP_LOKI_ENDPOINT")
	lokiTenantID := os.Getenv("GRIP_LOKI_TENANT_ID")
	lokiUsername := os.Getenv("GRIP_LOKI_USERNAME")
	lokiPassword := os.Getenv("GRIP_LOKI_PASSWORD")
	lokiStaticLabels := parseKeyValueCSV(os.Getenv("GRIP_LOKI_STATIC_LABELS"))

	return LoggingConfig{
		Level: level,
		Loki: LokiConfig{
			Enable:       lokiEnable,
			Endpoint:     lokiEndpoint,
			TenantID:     lokiTenantID,
			Username:     lokiUsername,
			Password:     lokiPassword,
			StaticLabels: lokiStaticLabels,
		},
	}
}

// LoadServerConfigFromEnv 는 .env 를 한 번 읽어 현재 환경변수를 보완한 뒤
// "환경변수 > .env" 우선순위로 서버 설정을 구성합니다.
func LoadServerConfigFromEnv() (*ServerConfig, error) {
	loadDotEnvOnce()
	if dotenvErr != nil {
		return nil, dotenvErr
	}

	xffUntrusted, err := ParseXffRule(os.Getenv("GRIP_XFF_UNTRUSTED"))
	if err != nil {
		return nil, fmt.Errorf("GRIP_XFF_UNTRUSTED: %w", err)
	}
	xffTrusted, err := ParseXffRule(os.Getenv("GRIP_XFF_TRUSTED"))
	if err != nil {
		return nil, fmt.Errorf("GRIP_XFF_TRUSTED: %w", err)
	}

	cfg := &ServerConfig{
		HTTPListen:            getEnvOrDefault("GRIP_SERVER_HTTP_LISTEN", ":80"),
		HTTPSListen:           getEnvOrDefault("GRIP_SERVER_HTTPS_LISTEN", ":443"),
		AdminListen:           getEnvOrDefault("GRIP_SERVER_ADMIN_LISTEN", "127.0.0.1:5100"),
		RoutesFile:            os.Getenv("GRIP_ROUTES_FILE"),
		SigIss:                os.Getenv("GRIP_SIG_ISS"),
		SigKey:                os.Getenv("GRIP_SIG_KEY"),
		UpstreamKey:           os.Getenv("GRIP_UPSTREAM_KEY"),
		UseXForwardedProtocol: getEnvBool("GRIP_USE_X_FORWARDED_PROTOCOL", false),
		XffUntrusted:          xffUntrusted,
		XffTrusted:            xffTrusted,
		HandoffAddr:           os.Getenv("GRIP_HANDOFF_ADDR"),
		AdminToken:            os.Getenv("GRIP_ADMIN_TOKEN"),
		Debug:                 getEnvBool("GRIP_SERVER_DEBUG", false),
		Logging:               loadLoggingFromEnv(),
	}
	return cfg, nil
}
