package upstream

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/http2"

	"github.com/dalbodeule/grip-gate/internal/logging"
	"github.com/dalbodeule/grip-gate/internal/proxy"
)

// Dispatcher 는 이벤트 콜백을 세션의 Loop 위로 전달하는 함수입니다.
// 보통 (*proxy.Loop).Post 를 그대로 넘깁니다.
type Dispatcher func(fn func())

// Manager 는 proxy.UpstreamManager 구현입니다. 세션마다 하나씩 만들되
// 전송 커넥션 풀은 프로세스 전체에서 공유합니다.
type Manager struct {
	Logger   logging.Logger
	Dispatch Dispatcher

	transports *Transports
}

// Transports 는 공유 http.Transport 쌍입니다. insecure 는 타겟의
// insecure 플래그가 설정된 경우에만 사용합니다.
type Transports struct {
	standard *http.Transport
	insecure *http.Transport
}

// NewTransports 는 HTTP/2 시도가 켜진 공유 전송 풀을 생성합니다.
func NewTransports() *Transports {
	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	// h2 ALPN 설정을 명시적으로 구성해 둡니다.
	_ = http2.ConfigureTransport(base)

	insecure := base.Clone()
	insecure.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	_ = http2.ConfigureTransport(insecure)

	return &Transports{standard: base, insecure: insecure}
}

// NewManager 는 세션 Loop 하나에 묶인 Manager 를 생성합니다.
func NewManager(logger logging.Logger, tr *Transports, dispatch Dispatcher) *Manager {
	if tr == nil {
		tr = NewTransports()
	}
	return &Manager{
		Logger:     logger.With(logging.Fields{"component": "upstream"}),
		Dispatch:   dispatch,
		transports: tr,
	}
}

// CreateRequest 는 아직 시작되지 않은 upstream 요청 핸들을 생성합니다.
func (m *Manager) CreateRequest() proxy.UpstreamRequest {
	ctx, cancel := context.WithCancel(context.Background())
	return &Request{
		log:      m.Logger,
		dispatch: m.Dispatch,
		trs:      m.transports,
		ctx:      ctx,
		cancel:   cancel,
		writeCh:  make(chan []byte, 16),
		endCh:    make(chan struct{}),
	}
}

// maxPending 은 세션이 읽어가기 전까지 보관할 응답 바이트의 상한입니다.
// 이 이상은 resp.Body 에서 읽지 않고 대기해 backpressure 를 전송 계층까지 전달합니다.
const maxPending = 200000

// Request 는 net/http 위에서 동작하는 proxy.UpstreamRequest 구현입니다.
//
// 이벤트 콜백은 전부 Dispatcher 를 통해 세션 Loop 로 전달되므로, 세션이
// 보는 모든 상태 변화는 Loop 위에서 직렬화됩니다. 내부 goroutine 과
// Loop 사이의 공유 상태는 mu 로 보호합니다.
type Request struct {
	log      logging.Logger
	dispatch Dispatcher
	trs      *Transports

	ctx    context.Context
	cancel context.CancelFunc

	ignorePolicies  bool
	ignoreTLSErrors bool
	connectHost     string
	connectPort     int

	onReadyRead    func()
	onBytesWritten func(int)
	onError        func()

	writeCh chan []byte
	endCh   chan struct{}

	mu       sync.Mutex
	cond     *sync.Cond
	pending  []byte
	respCode int
	respText string
	respHdr  http.Header
	bodyDone bool
	errCond  proxy.ErrorCondition
	closed   bool
}

func (r *Request) SetIgnorePolicies(on bool)  { r.ignorePolicies = on }
func (r *Request) SetIgnoreTLSErrors(on bool) { r.ignoreTLSErrors = on }
func (r *Request) SetConnectHost(host string) { r.connectHost = host }
func (r *Request) SetConnectPort(port int)    { r.connectPort = port }

func (r *Request) OnReadyRead(fn func())       { r.onReadyRead = fn }
func (r *Request) OnBytesWritten(fn func(int)) { r.onBytesWritten = fn }
func (r *Request) OnError(fn func())           { r.onError = fn }

// Start 는 요청을 시작합니다. 본문은 WriteBody/EndBody 로 스트리밍됩니다.
func (r *Request) Start(method string, uri *url.URL, headers http.Header) {
	r.mu.Lock()
	if r.cond == nil {
		r.cond = sync.NewCond(&r.mu)
	}
	r.mu.Unlock()

	pr, pw := io.Pipe()

	u := *uri
	// 실제 연결은 라우트 타겟으로 향합니다. Host 헤더/URI 는 그대로 둡니다.
	addr := net.JoinHostPort(r.connectHost, fmt.Sprintf("%d", r.connectPort))

	transport := r.trs.standard
	if r.ignoreTLSErrors {
		transport = r.trs.insecure
	}
	transport = transport.Clone()
	transport.DialContext = func(ctx context.Context, network, _ string) (net.Conn, error) {
		d := &net.Dialer{Timeout: 10 * time.Second}
		return d.DialContext(ctx, network, addr)
	}
	if r.ignorePolicies {
		// 신뢰된 타겟: 환경 프록시 정책을 우회해 직접 연결합니다.
		transport.Proxy = nil
	}

	req, err := http.NewRequestWithContext(r.ctx, method, u.String(), pr)
	if err != nil {
		r.fail(proxy.ErrorGeneric)
		return
	}
	req.Header = cloneHeader(headers)
	if host := headers.Get("Host"); host != "" {
		req.Host = host
	}

	// 본문 쓰기 goroutine: WriteBody 큐를 pipe 로 옮기고 전송된 양을 ack 합니다.
	go func() {
		for {
			select {
			case buf := <-r.writeCh:
				if _, err := pw.Write(buf); err != nil {
					return
				}
				n := len(buf)
				r.dispatch(func() {
					if r.isClosed() {
						return
					}
					if r.onBytesWritten != nil {
						r.onBytesWritten(n)
					}
				})
			case <-r.endCh:
				// 큐에 남은 청크를 모두 흘려보낸 뒤 본문을 닫습니다.
				for {
					select {
					case buf := <-r.writeCh:
						if _, err := pw.Write(buf); err != nil {
							return
						}
						n := len(buf)
						r.dispatch(func() {
							if r.isClosed() {
								return
							}
							if r.onBytesWritten != nil {
								r.onBytesWritten(n)
							}
						})
					default:
						_ = pw.Close()
						return
					}
				}
			case <-r.ctx.Done():
				_ = pw.CloseWithError(r.ctx.Err())
				return
			}
		}
	}()

	// 응답 goroutine: 응답 헤더와 본문을 받아 Loop 로 이벤트를 전달합니다.
	go func() {
		client := &http.Client{Transport: transport}

		resp, err := client.Do(req)
		if err != nil {
			cond := classify(err)
			r.mu.Lock()
			r.errCond = cond
			r.mu.Unlock()
			r.dispatch(func() {
				if r.isClosed() {
					return
				}
				if r.onError != nil {
					r.onError()
				}
			})
			return
		}
		defer resp.Body.Close()

		r.mu.Lock()
		r.respCode = resp.StatusCode
		r.respText = reasonOf(resp)
		r.respHdr = cloneHeader(resp.Header)
		r.mu.Unlock()

		notify := func() {
			r.dispatch(func() {
				if r.isClosed() {
					return
				}
				if r.onReadyRead != nil {
					r.onReadyRead()
				}
			})
		}

		buf := make([]byte, 32*1024)
		for {
			// 세션이 pending 을 읽어갈 때까지 대기해 backpressure 를 유지합니다.
			r.mu.Lock()
			for len(r.pending) >= maxPending && !r.closed {
				r.cond.Wait()
			}
			closed := r.closed
			r.mu.Unlock()
			if closed {
				return
			}

			n, err := resp.Body.Read(buf)
			if n > 0 {
				r.mu.Lock()
				r.pending = append(r.pending, buf[:n]...)
				r.mu.Unlock()
				notify()
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					r.mu.Lock()
					r.bodyDone = true
					r.mu.Unlock()
					// 본문이 비어도 완료를 알 수 있도록 최소 한 번은 알립니다.
					notify()
				} else {
					r.mu.Lock()
					r.errCond = classify(err)
					r.mu.Unlock()
					r.dispatch(func() {
						if r.isClosed() {
							return
						}
						if r.onError != nil {
							r.onError()
						}
					})
				}
				return
			}
		}
	}()
}

// WriteBody 는 본문 청크를 전송 큐에 넣습니다. 전송이 끝나면
// bytesWritten 이벤트로 ack 됩니다.
func (r *Request) WriteBody(body []byte) {
	buf := make([]byte, len(body))
	copy(buf, body)
	select {
	case r.writeCh <- buf:
	case <-r.ctx.Done():
	}
}

// EndBody 는 더 이상 본문이 없음을 알립니다.
func (r *Request) EndBody() {
	select {
	case <-r.endCh:
	default:
		close(r.endCh)
	}
}

// ReadBody 는 보관 중인 응답 바이트를 최대 max 만큼 꺼냅니다.
func (r *Request) ReadBody(max int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.pending) == 0 {
		return nil
	}

	n := len(r.pending)
	if max >= 0 && n > max {
		n = max
	}
	out := make([]byte, n)
	copy(out, r.pending[:n])
	r.pending = r.pending[n:]
	r.cond.Signal()
	return out
}

func (r *Request) ResponseCode() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.respCode
}

func (r *Request) ResponseReason() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.respText
}

func (r *Request) ResponseHeaders() http.Header {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.respHdr
}

// IsFinished 는 응답 본문이 끝났고 보관분까지 모두 읽혔는지를 반환합니다.
func (r *Request) IsFinished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bodyDone && len(r.pending) == 0
}

func (r *Request) ErrorCondition() proxy.ErrorCondition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errCond
}

// Close 는 핸들을 파기하고 진행 중인 전송을 중단합니다. 이후의 이벤트는 전달되지 않습니다.
func (r *Request) Close() {
	r.mu.Lock()
	r.closed = true
	if r.cond != nil {
		r.cond.Broadcast()
	}
	r.mu.Unlock()
	r.cancel()
}

func (r *Request) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *Request) fail(cond proxy.ErrorCondition) {
	r.mu.Lock()
	r.errCond = cond
	r.mu.Unlock()
	r.dispatch(func() {
		if r.isClosed() {
			return
		}
		if r.onError != nil {
			r.onError()
		}
	})
}

// reasonOf 는 "200 OK" 형태의 Status 에서 reason 구절만 잘라냅니다.
func reasonOf(resp *http.Response) string {
	status := resp.Status
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if len(status) > len(prefix) && status[:len(prefix)] == prefix {
		return status[len(prefix):]
	}
	if status != "" {
		return status
	}
	return http.StatusText(resp.StatusCode)
}

// classify 는 전송 오류를 세션이 이해하는 분류로 변환합니다.
// 연결/TLS 단계 오류만 재시도 대상이 됩니다.
func classify(err error) proxy.ErrorCondition {
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return proxy.ErrorTLS
	}
	var unkErr x509.UnknownAuthorityError
	if errors.As(err, &unkErr) {
		return proxy.ErrorTLS
	}
	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return proxy.ErrorTLS
	}
	var recErr tls.RecordHeaderError
	if errors.As(err, &recErr) {
		return proxy.ErrorTLS
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		if opErr.Timeout() {
			return proxy.ErrorConnectTimeout
		}
		return proxy.ErrorConnect
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return proxy.ErrorConnect
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return proxy.ErrorConnectTimeout
	}

	return proxy.ErrorGeneric
}

func cloneHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, vs := range h {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
