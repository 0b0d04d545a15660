package server

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/http2"

	"github.com/dalbodeule/grip-gate/internal/config"
	"github.com/dalbodeule/grip-gate/internal/domainmap"
	"github.com/dalbodeule/grip-gate/internal/handoff"
	"github.com/dalbodeule/grip-gate/internal/logging"
	"github.com/dalbodeule/grip-gate/internal/observability"
	"github.com/dalbodeule/grip-gate/internal/proxy"
	"github.com/dalbodeule/grip-gate/internal/upstream"
)

// Submitter 는 accept handoff 스냅샷을 long-poll 서브시스템에 전달합니다.
type Submitter interface {
	Submit(ctx context.Context, adata *handoff.AcceptData) error
}

// Front 는 inbound HTTP(S) 요청을 받아 프록시 세션으로 연결하는 진입점입니다.
// 동일한 요청(메서드+호스트+URI, 본문 없는 메서드)은 살아 있는 세션 하나로
// 합쳐지고, 응답은 모든 클라이언트로 fan-out 됩니다.
type Front struct {
	cfg       *config.ServerConfig
	log       logging.Logger
	domains   domainmap.DomainMap
	trs       *upstream.Transports
	submitter Submitter

	mu   sync.Mutex
	live map[string]*liveSession
}

// liveSession 은 합쳐질 수 있는 진행 중 세션입니다. clients 는 세션 Loop
// 위에서만 접근합니다.
type liveSession struct {
	loop    *proxy.Loop
	sess    *proxy.Session
	clients map[handoff.Rid]*RequestSession
}

// NewFront 는 front 를 생성합니다. submitter 는 nil 일 수 있으며, 그 경우
// accept handoff 가 발생하면 클라이언트에 cannot-accept 로 응답합니다.
func NewFront(cfg *config.ServerConfig, logger logging.Logger, domains domainmap.DomainMap, submitter Submitter) *Front {
	return &Front{
		cfg:       cfg,
		log:       logger.With(logging.Fields{"component": "front"}),
		domains:   domains,
		trs:       upstream.NewTransports(),
		submitter: submitter,
		live:      make(map[string]*liveSession),
	}
}

// NewHTTPServer 는 H1/H2 를 지원하는 기본 HTTP 서버를 생성합니다.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	_ = http2.ConfigureServer(srv, &http2.Server{})
	return srv
}

// coalesceKey 는 합치기 가능한 요청의 키를 만듭니다. 본문이 있을 수 있는
// 메서드는 합치지 않습니다.
func coalesceKey(req *http.Request) (string, bool) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return "", false
	}
	return req.Method + " " + req.Host + " " + req.URL.RequestURI(), true
}

func (f *Front) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	key, coalescable := coalesceKey(req)

	if coalescable {
		f.mu.Lock()
		ls, ok := f.live[key]
		f.mu.Unlock()
		if ok {
			// 이미 같은 요청이 진행 중이면 그 세션에 합류를 시도합니다.
			rs := NewRequestSession(f.log, ls.loop, w, req)
			ls.loop.Post(func() {
				if ls.sess.CanAdd() {
					ls.clients[rs.Rid()] = rs
					ls.sess.Add(rs)
				} else {
					// 경계 시점에 닫혔습니다. 새 세션으로 처리합니다.
					f.startSession(key, coalescable, ls.loop, rs)
				}
			})
			rs.Serve()
			f.observe(req, rs, start)
			return
		}
	}

	loop := proxy.NewLoop()
	go loop.Run()

	rs := NewRequestSession(f.log, loop, w, req)
	loop.Post(func() {
		f.startSession(key, coalescable, loop, rs)
	})
	rs.Serve()
	f.observe(req, rs, start)
}

func (f *Front) observe(req *http.Request, rs *RequestSession, start time.Time) {
	observability.HTTPRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(rs.Status())).Inc()
	f.log.Debug("request served", logging.Fields{
		"method":     req.Method,
		"host":       req.Host,
		"status":     rs.Status(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
}

// startSession 은 Loop 위에서 새 프록시 세션을 만들어 등록합니다.
func (f *Front) startSession(key string, coalescable bool, loop *proxy.Loop, rs *RequestSession) {
	um := upstream.NewManager(f.log, f.trs, loop.Post)
	sess := proxy.NewSession(f.log, um, f.domains)
	sess.SetDefaultSigKey(f.cfg.SigIss, []byte(f.cfg.SigKey))
	sess.SetDefaultUpstreamKey([]byte(f.cfg.UpstreamKey))
	sess.SetUseXForwardedProtocol(f.cfg.UseXForwardedProtocol)
	sess.SetXffRules(
		proxy.XffRule{Truncate: f.cfg.XffUntrusted.Truncate, Append: f.cfg.XffUntrusted.Append},
		proxy.XffRule{Truncate: f.cfg.XffTrusted.Truncate, Append: f.cfg.XffTrusted.Append},
	)

	ls := &liveSession{
		loop:    loop,
		sess:    sess,
		clients: map[handoff.Rid]*RequestSession{rs.Rid(): rs},
	}

	unregister := func() {
		if !coalescable {
			return
		}
		f.mu.Lock()
		if f.live[key] == ls {
			delete(f.live, key)
		}
		f.mu.Unlock()
	}

	sess.SetEvents(proxy.Events{
		AddNotAllowed: func() {
			unregister()
		},
		RequestSessionDestroyed: func(r proxy.RequestSession) {
			if rr, ok := r.(*RequestSession); ok {
				delete(ls.clients, rr.Rid())
			}
		},
		FinishedByPassthrough: func() {
			unregister()
			loop.Stop()
		},
		FinishedForAccept: func(adata *handoff.AcceptData) {
			unregister()
			// Loop 를 오래 붙잡지 않도록 전달은 별도 goroutine 에서 수행합니다.
			snapshot := make(map[handoff.Rid]*RequestSession, len(ls.clients))
			for rid, c := range ls.clients {
				snapshot[rid] = c
			}
			go func() {
				f.deliverHandoff(adata, snapshot)
				loop.Stop()
			}()
		},
	})

	if coalescable {
		f.mu.Lock()
		f.live[key] = ls
		f.mu.Unlock()
	}

	sess.Add(rs)
}

// deliverHandoff 는 AcceptData 를 서브시스템으로 전달하고, 성공 여부에 따라
// paused 클라이언트들을 풀어주거나 cannot-accept 로 응답합니다.
func (f *Front) deliverHandoff(adata *handoff.AcceptData, paused map[handoff.Rid]*RequestSession) {
	if f.submitter == nil {
		f.log.Warn("no handoff subsystem configured", nil)
		f.respondCannotAccept(paused)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := f.submitter.Submit(ctx, adata); err != nil {
		f.log.Error("handoff submit failed", logging.Fields{"error": err.Error()})
		f.respondCannotAccept(paused)
		return
	}

	// 소유권이 서브시스템으로 넘어갔습니다. 핸들러 goroutine 을 풀어줍니다.
	for _, rs := range paused {
		rs.Release()
	}
}

func (f *Front) respondCannotAccept(paused map[handoff.Rid]*RequestSession) {
	for _, rs := range paused {
		rs.RespondCannotAccept()
	}
}
