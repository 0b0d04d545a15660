package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/dalbodeule/grip-gate/internal/errorpages"
	"github.com/dalbodeule/grip-gate/internal/handoff"
	"github.com/dalbodeule/grip-gate/internal/logging"
	"github.com/dalbodeule/grip-gate/internal/proxy"
)

// writeOp 는 핸들러 goroutine 이 수행할 응답 쓰기 작업입니다.
// 세션 코어는 Loop 위에서 op 를 큐에 넣기만 하고, 실제 ResponseWriter
// 접근은 핸들러 goroutine 하나가 전담합니다.
type writeOp struct {
	start        bool
	code         int
	reason       string
	headers      http.Header
	body         []byte
	end          bool
	errorPage    bool
	cannotAccept bool
	message      string
}

// RequestSession 은 net/http 핸들러 위에서 동작하는 proxy.RequestSession 구현입니다.
type RequestSession struct {
	log  logging.Logger
	loop *proxy.Loop

	rid             handoff.Rid
	req             *http.Request
	w               http.ResponseWriter
	isHTTPS         bool
	isRetry         bool
	peer            string
	autoCrossOrigin bool
	jsonpCallback   string

	stream *requestStream

	onBytesWritten    func(int)
	onErrorResponding func()
	onFinished        func()
	onPaused          func()

	ops     chan writeOp
	release chan struct{}

	mu     sync.Mutex
	outSeq int
	status int
	paused bool
	done   bool
}

// outWindow 는 클라이언트 쪽 전송 크레딧의 초기값입니다.
const outWindow = 200000

// NewRequestSession 은 inbound 요청 하나를 감싸는 세션을 만듭니다.
// Serve 를 핸들러 goroutine 에서 호출해야 응답이 흘러갑니다.
func NewRequestSession(logger logging.Logger, loop *proxy.Loop, w http.ResponseWriter, req *http.Request) *RequestSession {
	rs := &RequestSession{
		log:  logger.With(logging.Fields{"component": "request_session"}),
		loop: loop,
		rid: handoff.Rid{
			Sender: "grip-gate",
			ID:     uuid.NewString(),
		},
		req:     req,
		w:       w,
		isHTTPS: req.TLS != nil,
		peer:    peerOf(req),
		ops:     make(chan writeOp, 32),
		release: make(chan struct{}),
	}

	// JSONP 콜백은 쿼리로 전달됩니다. 변환 자체는 long-poll 쪽의 일입니다.
	rs.jsonpCallback = req.URL.Query().Get("callback")

	rs.stream = newRequestStream(loop, req.Body)
	rs.stream.owner = rs
	return rs
}

func peerOf(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}

// RequestData 는 코어가 채택할 요청 데이터를 반환합니다. 본문 스트리밍은
// Request() 핸들이 담당하므로 Body 는 항상 비어 있습니다.
func (rs *RequestSession) RequestData() handoff.RequestData {
	uri := *rs.req.URL
	if uri.Host == "" {
		uri.Host = rs.req.Host
	}
	if uri.Scheme == "" {
		if rs.isHTTPS {
			uri.Scheme = "https"
		} else {
			uri.Scheme = "http"
		}
	}

	headers := make(http.Header, len(rs.req.Header))
	for k, vs := range rs.req.Header {
		headers[k] = append([]string(nil), vs...)
	}
	if headers.Get("Host") == "" && rs.req.Host != "" {
		headers.Set("Host", rs.req.Host)
	}

	return handoff.RequestData{
		Method:  rs.req.Method,
		URI:     &uri,
		Headers: headers,
	}
}

func (rs *RequestSession) Request() proxy.RequestStream { return rs.stream }
func (rs *RequestSession) IsHTTPS() bool                { return rs.isHTTPS }
func (rs *RequestSession) IsRetry() bool                { return rs.isRetry }
func (rs *RequestSession) PeerAddress() string          { return rs.peer }
func (rs *RequestSession) Rid() handoff.Rid             { return rs.rid }
func (rs *RequestSession) AutoCrossOrigin() bool        { return rs.autoCrossOrigin }
func (rs *RequestSession) JsonpCallback() string        { return rs.jsonpCallback }

func (rs *RequestSession) OnBytesWritten(fn func(int)) { rs.onBytesWritten = fn }
func (rs *RequestSession) OnErrorResponding(fn func()) { rs.onErrorResponding = fn }
func (rs *RequestSession) OnFinished(fn func())        { rs.onFinished = fn }
func (rs *RequestSession) OnPaused(fn func())          { rs.onPaused = fn }

func (rs *RequestSession) StartResponse(code int, reason string, headers http.Header) {
	rs.enqueue(writeOp{start: true, code: code, reason: reason, headers: headers})
}

func (rs *RequestSession) WriteResponseBody(body []byte) {
	buf := make([]byte, len(body))
	copy(buf, body)
	rs.enqueue(writeOp{body: buf})
}

func (rs *RequestSession) EndResponseBody() {
	rs.enqueue(writeOp{end: true})
}

func (rs *RequestSession) RespondError(code int, reason, message string) {
	rs.enqueue(writeOp{errorPage: true, code: code, reason: reason, message: message})
}

func (rs *RequestSession) RespondCannotAccept() {
	rs.enqueue(writeOp{cannotAccept: true})
}

// Pause 는 전송 상태를 고정하고 paused 이벤트를 보냅니다. 연결은
// Release 가 호출될 때까지 핸들러 goroutine 이 붙잡고 있습니다.
func (rs *RequestSession) Pause() {
	rs.mu.Lock()
	rs.paused = true
	rs.mu.Unlock()

	if rs.onPaused != nil {
		rs.onPaused()
	}
}

// Release 는 paused 세션의 핸들러 goroutine 을 풀어줍니다.
// handoff 전달이 끝난 뒤 front 가 호출합니다.
func (rs *RequestSession) Release() {
	select {
	case <-rs.release:
	default:
		close(rs.release)
	}
}

func (rs *RequestSession) enqueue(op writeOp) {
	select {
	case rs.ops <- op:
	case <-rs.release:
	}
}

// Serve 는 핸들러 goroutine 에서 응답 쓰기 작업을 수행합니다.
// 세션이 끝나거나(finished), paused 상태에서 Release 될 때까지 반환하지 않습니다.
func (rs *RequestSession) Serve() {
	flusher, _ := rs.w.(http.Flusher)
	started := false

	finish := func() {
		rs.mu.Lock()
		rs.done = true
		rs.mu.Unlock()
		if rs.onFinished != nil {
			rs.loop.Post(rs.onFinished)
		}
	}

	for {
		select {
		case op := <-rs.ops:
			switch {
			case op.start:
				for k, vs := range op.headers {
					for _, v := range vs {
						rs.w.Header().Add(k, v)
					}
				}
				// net/http 가 청크 인코딩을 직접 관리합니다.
				rs.w.Header().Del("Transfer-Encoding")
				rs.w.WriteHeader(op.code)
				rs.setStatus(op.code)
				started = true

			case len(op.body) > 0:
				n, err := rs.w.Write(op.body)
				if flusher != nil {
					flusher.Flush()
				}
				if err != nil {
					rs.log.Debug("client write failed", logging.Fields{
						"rid":   rs.rid.ID,
						"error": err.Error(),
					})
					if rs.onErrorResponding != nil {
						rs.loop.Post(rs.onErrorResponding)
					}
					finish()
					return
				}
				rs.mu.Lock()
				rs.outSeq += n
				rs.mu.Unlock()
				if rs.onBytesWritten != nil {
					count := n
					rs.loop.Post(func() { rs.onBytesWritten(count) })
				}

			case op.end:
				finish()
				return

			case op.errorPage:
				if !started {
					rs.writeErrorPage(op.code, op.reason, op.message)
					rs.setStatus(op.code)
				}
				finish()
				return

			case op.cannotAccept:
				if !started {
					rs.writeErrorPage(http.StatusServiceUnavailable, "Service Unavailable",
						"Service cannot accept the request for push delivery.")
					rs.setStatus(http.StatusServiceUnavailable)
				}
				finish()
				return
			}

		case <-rs.release:
			// paused 세션의 handoff 가 끝났습니다. 연결 소유권은 이미
			// long-poll 서브시스템으로 넘어간 것으로 취급합니다.
			return
		}
	}
}

func (rs *RequestSession) setStatus(code int) {
	rs.mu.Lock()
	rs.status = code
	rs.mu.Unlock()
}

// Status 는 이 세션이 클라이언트에 내려보낸 응답 코드입니다. 응답이
// 시작되지 않았으면 0 입니다.
func (rs *RequestSession) Status() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.status
}

func (rs *RequestSession) writeErrorPage(code int, reason, message string) {
	if html, ok := errorpages.Load(code); ok {
		rs.w.Header().Set("Content-Type", "text/html; charset=utf-8")
		rs.w.WriteHeader(code)
		_, _ = rs.w.Write(html)
		return
	}

	rs.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	rs.w.WriteHeader(code)
	_, _ = fmt.Fprintf(rs.w, "%d %s\n%s\n", code, reason, message)
}

// requestStream 은 inbound 본문을 읽어 Loop 로 readyRead 를 전달하는
// proxy.RequestStream 구현입니다.
type requestStream struct {
	loop  *proxy.Loop
	owner *RequestSession

	onReadyRead func()
	onError     func()

	mu       sync.Mutex
	pending  []byte
	inSeq    int
	finished bool
	failed   bool
}

func newRequestStream(loop *proxy.Loop, body io.ReadCloser) *requestStream {
	st := &requestStream{loop: loop}

	go func() {
		buf := make([]byte, 32*1024)
		for {
			n, err := body.Read(buf)
			if n > 0 {
				st.mu.Lock()
				st.pending = append(st.pending, buf[:n]...)
				st.inSeq += n
				st.mu.Unlock()
				st.loop.Post(func() {
					if st.onReadyRead != nil {
						st.onReadyRead()
					}
				})
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					st.mu.Lock()
					st.finished = true
					st.mu.Unlock()
					st.loop.Post(func() {
						if st.onReadyRead != nil {
							st.onReadyRead()
						}
					})
				} else {
					st.mu.Lock()
					st.failed = true
					st.mu.Unlock()
					st.loop.Post(func() {
						if st.onError != nil {
							st.onError()
						}
					})
				}
				return
			}
		}
	}()

	return st
}

func (st *requestStream) ReadBody() []byte {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := st.pending
	st.pending = nil
	return out
}

func (st *requestStream) IsInputFinished() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.finished && len(st.pending) == 0
}

func (st *requestStream) ServerState() handoff.ServerState {
	st.mu.Lock()
	inSeq := st.inSeq
	st.mu.Unlock()

	outSeq := 0
	if st.owner != nil {
		st.owner.mu.Lock()
		outSeq = st.owner.outSeq
		st.owner.mu.Unlock()
	}

	return handoff.ServerState{
		InSeq:      inSeq,
		OutSeq:     outSeq,
		OutCredits: outWindow,
	}
}

func (st *requestStream) OnReadyRead(fn func()) { st.onReadyRead = fn }
func (st *requestStream) OnError(fn func())     { st.onError = fn }
