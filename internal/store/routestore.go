package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dalbodeule/grip-gate/ent"
	entroute "github.com/dalbodeule/grip-gate/ent/route"
	"github.com/dalbodeule/grip-gate/internal/domainmap"
	"github.com/dalbodeule/grip-gate/internal/logging"
)

// RouteStore 는 PostgreSQL 에 저장된 라우트를 조회하는 domainmap.DomainMap
// 구현입니다. 프록시 hot path 에서 매번 DB 를 때리지 않도록 도메인별로
// 짧은 TTL 캐시를 둡니다.
//
// RouteStore looks up routes from PostgreSQL with a short per-domain cache so
// the proxy hot path does not hit the database on every request.
type RouteStore struct {
	log    logging.Logger
	client *ent.Client
	ttl    time.Duration

	mu    sync.Mutex
	cache map[string]cachedEntry
}

type cachedEntry struct {
	entry   domainmap.Entry
	fetched time.Time
}

// NewRouteStore 는 ent.Client 위에 RouteStore 를 만듭니다.
func NewRouteStore(logger logging.Logger, client *ent.Client, ttl time.Duration) *RouteStore {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RouteStore{
		log:    logger.With(logging.Fields{"component": "route_store"}),
		client: client,
		ttl:    ttl,
		cache:  make(map[string]cachedEntry),
	}
}

// Entry 는 host 의 라우트를 조회합니다. 정확한 도메인 매칭이 우선하고,
// 없으면 "*" 라우트를 시도합니다. 조회 실패는 빈 Entry(라우트 없음)로
// 처리되어 세션이 502 로 응답하게 됩니다.
func (s *RouteStore) Entry(host, path string, isHTTPS bool) domainmap.Entry {
	host = strings.ToLower(host)

	if e, ok := s.lookup(host); ok {
		return e
	}
	if e, ok := s.lookup("*"); ok {
		return e
	}
	return domainmap.Entry{}
}

func (s *RouteStore) lookup(domain string) (domainmap.Entry, bool) {
	s.mu.Lock()
	if c, ok := s.cache[domain]; ok && time.Since(c.fetched) < s.ttl {
		s.mu.Unlock()
		return c.entry, !c.entry.IsNull()
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	r, err := s.client.Route.Query().
		Where(entroute.Domain(domain)).
		Only(ctx)

	var entry domainmap.Entry
	switch {
	case err == nil:
		entry, err = entryFromRoute(r)
		if err != nil {
			s.log.Error("route row is malformed", logging.Fields{
				"domain": domain,
				"error":  err.Error(),
			})
			entry = domainmap.Entry{}
		}
	case ent.IsNotFound(err):
		// 라우트 없음도 캐시해 반복 미스를 줄입니다.
		entry = domainmap.Entry{}
	default:
		s.log.Error("route query failed", logging.Fields{
			"domain": domain,
			"error":  err.Error(),
		})
		return domainmap.Entry{}, false
	}

	s.mu.Lock()
	s.cache[domain] = cachedEntry{entry: entry, fetched: time.Now()}
	s.mu.Unlock()

	return entry, !entry.IsNull()
}

// Invalidate 는 도메인 하나의 캐시를 무효화합니다. admin 이 라우트를
// 변경했을 때 호출합니다.
func (s *RouteStore) Invalidate(domain string) {
	s.mu.Lock()
	delete(s.cache, strings.ToLower(domain))
	s.mu.Unlock()
}

// entryFromRoute 는 Route 엔티티를 domainmap.Entry 로 변환합니다.
// targets 컬럼은 "host:port[,flags]" 를 공백으로 연결한 문자열입니다.
func entryFromRoute(r *ent.Route) (domainmap.Entry, error) {
	entry := domainmap.Entry{
		Prefix: r.ChannelPrefix,
		SigIss: r.SigIss,
		SigKey: r.SigKey,
	}

	for _, raw := range strings.Fields(r.Targets) {
		t, err := domainmap.ParseTarget(raw)
		if err != nil {
			return domainmap.Entry{}, err
		}
		entry.Targets = append(entry.Targets, t)
	}
	return entry, nil
}
