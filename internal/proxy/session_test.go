package proxy

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/dalbodeule/grip-gate/internal/domainmap"
	"github.com/dalbodeule/grip-gate/internal/handoff"
	"github.com/dalbodeule/grip-gate/internal/logging"
	"github.com/dalbodeule/grip-gate/internal/token"
)

// fakeStream simulates the inbound request body handle. Tests push data with
// pushBody and the session pulls it with ReadBody.
type fakeStream struct {
	data     []byte
	finished bool
	state    handoff.ServerState

	readyRead func()
	errored   func()
}

func (f *fakeStream) ReadBody() []byte {
	out := f.data
	f.data = nil
	return out
}

func (f *fakeStream) IsInputFinished() bool {
	return f.finished && len(f.data) == 0
}

func (f *fakeStream) ServerState() handoff.ServerState { return f.state }
func (f *fakeStream) OnReadyRead(fn func())            { f.readyRead = fn }
func (f *fakeStream) OnError(fn func())                { f.errored = fn }

func (f *fakeStream) pushBody(t *testing.T, b []byte, end bool) {
	t.Helper()
	f.data = append(f.data, b...)
	if end {
		f.finished = true
	}
	if f.readyRead != nil {
		f.readyRead()
	}
}

// fakeClient simulates an inbound request session and records everything the
// session core does to it.
type fakeClient struct {
	rd    handoff.RequestData
	https bool
	retry bool
	peer  string
	rid   handoff.Rid

	stream *fakeStream

	startCode    int
	startReason  string
	startHeaders http.Header
	started      bool
	body         bytes.Buffer
	ended        bool
	errCode      int
	errReason    string
	errMessage   string
	cannotAccept bool
	pauseCalled  bool
	unacked      int

	onBytesWritten    func(int)
	onErrorResponding func()
	onFinished        func()
	onPaused          func()
}

func newFakeClient(id, method, rawurl string) *fakeClient {
	u, _ := url.Parse(rawurl)
	return &fakeClient{
		rd: handoff.RequestData{
			Method:  method,
			URI:     u,
			Headers: http.Header{},
		},
		peer:   "10.0.0.1",
		rid:    handoff.Rid{Sender: "test", ID: id},
		stream: &fakeStream{finished: true},
	}
}

func (f *fakeClient) RequestData() handoff.RequestData { return f.rd }
func (f *fakeClient) Request() RequestStream           { return f.stream }
func (f *fakeClient) IsHTTPS() bool                    { return f.https }
func (f *fakeClient) IsRetry() bool                    { return f.retry }
func (f *fakeClient) PeerAddress() string              { return f.peer }
func (f *fakeClient) Rid() handoff.Rid                 { return f.rid }
func (f *fakeClient) AutoCrossOrigin() bool            { return false }
func (f *fakeClient) JsonpCallback() string            { return "" }

func (f *fakeClient) StartResponse(code int, reason string, headers http.Header) {
	f.started = true
	f.startCode = code
	f.startReason = reason
	f.startHeaders = headers
}

func (f *fakeClient) WriteResponseBody(body []byte) {
	f.body.Write(body)
	f.unacked += len(body)
}

func (f *fakeClient) EndResponseBody() { f.ended = true }

func (f *fakeClient) RespondError(code int, reason, message string) {
	f.errCode = code
	f.errReason = reason
	f.errMessage = message
}

func (f *fakeClient) RespondCannotAccept() { f.cannotAccept = true }
func (f *fakeClient) Pause()               { f.pauseCalled = true }

func (f *fakeClient) OnBytesWritten(fn func(int)) { f.onBytesWritten = fn }
func (f *fakeClient) OnErrorResponding(fn func()) { f.onErrorResponding = fn }
func (f *fakeClient) OnFinished(fn func())        { f.onFinished = fn }
func (f *fakeClient) OnPaused(fn func())          { f.onPaused = fn }

// ack acknowledges n written bytes back to the session.
func (f *fakeClient) ack(n int) {
	f.unacked -= n
	if f.onBytesWritten != nil {
		f.onBytesWritten(n)
	}
}

func (f *fakeClient) ackAll() {
	if f.unacked > 0 {
		f.ack(f.unacked)
	}
}

func (f *fakeClient) finish() {
	if f.onFinished != nil {
		f.onFinished()
	}
}

func (f *fakeClient) pausedDone() {
	if f.onPaused != nil {
		f.onPaused()
	}
}

// fakeUpstream simulates one upstream request handle.
type fakeUpstream struct {
	ignorePolicies  bool
	ignoreTLSErrors bool
	connectHost     string
	connectPort     int

	startMethod  string
	startURI     *url.URL
	startHeaders http.Header
	started      bool
	written      bytes.Buffer
	bodyEnded    bool
	closed       bool

	pending  []byte
	code     int
	reason   string
	headers  http.Header
	finished bool
	errCond  ErrorCondition

	readyRead    func()
	bytesWritten func(int)
	errored      func()
}

func (f *fakeUpstream) SetIgnorePolicies(on bool)  { f.ignorePolicies = on }
func (f *fakeUpstream) SetIgnoreTLSErrors(on bool) { f.ignoreTLSErrors = on }
func (f *fakeUpstream) SetConnectHost(host string) { f.connectHost = host }
func (f *fakeUpstream) SetConnectPort(port int)    { f.connectPort = port }

func (f *fakeUpstream) Start(method string, uri *url.URL, headers http.Header) {
	f.started = true
	f.startMethod = method
	u := *uri
	f.startURI = &u
	f.startHeaders = headers.Clone()
}

func (f *fakeUpstream) WriteBody(body []byte) { f.written.Write(body) }
func (f *fakeUpstream) EndBody()              { f.bodyEnded = true }

func (f *fakeUpstream) ReadBody(max int) []byte {
	n := len(f.pending)
	if max >= 0 && n > max {
		n = max
	}
	out := make([]byte, n)
	copy(out, f.pending[:n])
	f.pending = f.pending[n:]
	return out
}

func (f *fakeUpstream) ResponseCode() int            { return f.code }
func (f *fakeUpstream) ResponseReason() string       { return f.reason }
func (f *fakeUpstream) ResponseHeaders() http.Header { return f.headers }

func (f *fakeUpstream) IsFinished() bool {
	return f.finished && len(f.pending) == 0
}

func (f *fakeUpstream) ErrorCondition() ErrorCondition { return f.errCond }

func (f *fakeUpstream) OnReadyRead(fn func())       { f.readyRead = fn }
func (f *fakeUpstream) OnBytesWritten(fn func(int)) { f.bytesWritten = fn }
func (f *fakeUpstream) OnError(fn func())           { f.errored = fn }

func (f *fakeUpstream) Close() { f.closed = true }

// respond delivers response headers plus an initial body chunk.
func (f *fakeUpstream) respond(code int, reason string, headers http.Header, body []byte, end bool) {
	f.code = code
	f.reason = reason
	if headers == nil {
		headers = http.Header{}
	}
	f.headers = headers
	f.pending = append(f.pending, body...)
	if end {
		f.finished = true
	}
	if f.readyRead != nil {
		f.readyRead()
	}
}

// feed delivers a further body chunk after headers.
func (f *fakeUpstream) feed(body []byte, end bool) {
	f.pending = append(f.pending, body...)
	if end {
		f.finished = true
	}
	if f.readyRead != nil {
		f.readyRead()
	}
}

func (f *fakeUpstream) fail(cond ErrorCondition) {
	f.errCond = cond
	if f.errored != nil {
		f.errored()
	}
}

// fakeUpstreamManager hands out prepared fakeUpstream handles in order.
type fakeUpstreamManager struct {
	requests []*fakeUpstream
	created  int
}

func (m *fakeUpstreamManager) CreateRequest() UpstreamRequest {
	if m.created >= len(m.requests) {
		m.requests = append(m.requests, &fakeUpstream{})
	}
	req := m.requests[m.created]
	m.created++
	return req
}

// fakeDomainMap serves a fixed entry per host.
type fakeDomainMap struct {
	entries map[string]domainmap.Entry
}

func (m *fakeDomainMap) Entry(host, path string, isHTTPS bool) domainmap.Entry {
	return m.entries[host]
}

// eventRecorder captures the session's outbound events.
type eventRecorder struct {
	addNotAllowed int
	destroyed     []RequestSession
	passthrough   int
	accepted      []*handoff.AcceptData
}

func (r *eventRecorder) events() Events {
	return Events{
		AddNotAllowed:           func() { r.addNotAllowed++ },
		RequestSessionDestroyed: func(rs RequestSession) { r.destroyed = append(r.destroyed, rs) },
		FinishedByPassthrough:   func() { r.passthrough++ },
		FinishedForAccept:       func(adata *handoff.AcceptData) { r.accepted = append(r.accepted, adata) },
	}
}

func testLogger() logging.Logger {
	return logging.NewStdJSONLoggerAt("test", logging.ErrorLevel)
}

func singleTargetMap(host string) *fakeDomainMap {
	return &fakeDomainMap{entries: map[string]domainmap.Entry{
		host: {
			Prefix:  "chan-",
			Targets: []domainmap.Target{{Host: "127.0.0.1", Port: 8080}},
		},
	}}
}

func newTestSession(um UpstreamManager, dm domainmap.DomainMap) (*Session, *eventRecorder) {
	rec := &eventRecorder{}
	sess := NewSession(testLogger(), um, dm)
	sess.SetEvents(rec.events())
	return sess, rec
}

func TestSinglePassthroughSmallBody(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, rec := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/x")
	sess.Add(client)

	if sess.State() != Requesting {
		t.Fatalf("expected Requesting, got %v", sess.State())
	}

	up := um.requests[0]
	if !up.started {
		t.Fatal("upstream request was not started")
	}
	if up.startMethod != "GET" {
		t.Errorf("method = %q, want GET", up.startMethod)
	}
	if !up.bodyEnded {
		t.Error("upstream body should be ended for a bodyless request")
	}

	hdr := http.Header{}
	hdr.Set("Content-Type", "text/plain")
	up.respond(200, "OK", hdr, []byte("hello"), true)

	if sess.State() != Responding {
		t.Fatalf("expected Responding, got %v", sess.State())
	}
	if client.startCode != 200 || client.startReason != "OK" {
		t.Errorf("client got %d %q", client.startCode, client.startReason)
	}
	if got := client.startHeaders.Get("Transfer-Encoding"); got != "chunked" {
		t.Errorf("Transfer-Encoding = %q, want chunked", got)
	}
	if got := client.body.String(); got != "hello" {
		t.Errorf("client body = %q, want hello", got)
	}
	if !client.ended {
		t.Error("client response was not ended")
	}
	if rec.addNotAllowed != 1 {
		t.Errorf("addNotAllowed count = %d, want 1", rec.addNotAllowed)
	}

	client.finish()
	if rec.passthrough != 1 {
		t.Errorf("finishedByPassthrough count = %d, want 1", rec.passthrough)
	}
	if len(rec.destroyed) != 1 {
		t.Errorf("requestSessionDestroyed count = %d, want 1", len(rec.destroyed))
	}
}

func TestTwoClientsCoalesced(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, rec := newTestSession(um, singleTargetMap("example.com"))

	a := newFakeClient("a", "GET", "http://example.com/feed")
	b := newFakeClient("b", "GET", "http://example.com/feed")

	sess.Add(a)
	sess.Add(b)

	if um.created != 1 {
		t.Fatalf("upstream requests created = %d, want 1", um.created)
	}

	payload := bytes.Repeat([]byte("x"), 50*1024)
	up := um.requests[0]
	up.respond(200, "OK", http.Header{}, payload, true)

	for _, c := range []*fakeClient{a, b} {
		if c.startCode != 200 {
			t.Errorf("client %s code = %d", c.rid.ID, c.startCode)
		}
		if !bytes.Equal(c.body.Bytes(), payload) {
			t.Errorf("client %s body mismatch: got %d bytes", c.rid.ID, c.body.Len())
		}
		if !c.ended {
			t.Errorf("client %s not ended", c.rid.ID)
		}
	}

	a.finish()
	b.finish()
	if rec.passthrough != 1 {
		t.Errorf("finishedByPassthrough count = %d, want 1", rec.passthrough)
	}
}

func TestAcceptHandoff(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, rec := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/sub")
	client.stream.state = handoff.ServerState{InSeq: 3, OutSeq: 7, OutCredits: 1000}
	sess.SetInspectData(map[string]string{"route": "example"})
	sess.Add(client)

	hdr := http.Header{}
	hdr.Set("Content-Type", "application/grip-instruct")
	up := um.requests[0]
	up.respond(200, "OK", hdr, []byte(`{"hold":{"mode":"stream"}}`), true)

	if sess.State() != Accepting {
		t.Fatalf("expected Accepting, got %v", sess.State())
	}
	if !client.pauseCalled {
		t.Fatal("client was not paused")
	}
	if client.started {
		t.Error("client should not see a response in accept mode")
	}

	client.pausedDone()

	if len(rec.accepted) != 1 {
		t.Fatalf("finishedForAccept count = %d, want 1", len(rec.accepted))
	}
	adata := rec.accepted[0]
	if !adata.HaveResponse {
		t.Error("haveResponse = false, want true")
	}
	if got := string(adata.Response.Body); got != `{"hold":{"mode":"stream"}}` {
		t.Errorf("response body = %q", got)
	}
	if adata.ChannelPrefix != "chan-" {
		t.Errorf("channel prefix = %q", adata.ChannelPrefix)
	}
	if len(adata.Requests) != 1 {
		t.Fatalf("resumption records = %d, want 1", len(adata.Requests))
	}
	rr := adata.Requests[0]
	if rr.Rid != client.rid {
		t.Errorf("rid = %+v", rr.Rid)
	}
	if rr.InSeq != 3 || rr.OutSeq != 7 || rr.OutCredits != 1000 {
		t.Errorf("server state = %+v", rr)
	}
	if !adata.HaveInspectData {
		t.Error("inspect data was dropped")
	}
	if adata.RequestData.Method != "GET" {
		t.Errorf("request method = %q", adata.RequestData.Method)
	}
	if rec.passthrough != 0 {
		t.Error("passthrough must not fire on accept")
	}
}

func TestRetryAcrossTargets(t *testing.T) {
	dm := &fakeDomainMap{entries: map[string]domainmap.Entry{
		"example.com": {
			Targets: []domainmap.Target{
				{Host: "origin1", Port: 8080},
				{Host: "origin2", Port: 8443, SSL: true},
			},
		},
	}}
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}, {}}}
	sess, _ := newTestSession(um, dm)

	client := newFakeClient("a", "GET", "http://example.com/x")
	client.rd.Headers.Set("Accept", "text/plain")
	sess.Add(client)

	first := um.requests[0]
	first.fail(ErrorConnectTimeout)

	if um.created != 2 {
		t.Fatalf("upstream requests created = %d, want 2", um.created)
	}
	if !first.closed {
		t.Error("failed upstream handle was not closed")
	}

	second := um.requests[1]
	if second.connectHost != "origin2" || second.connectPort != 8443 {
		t.Errorf("second target = %s:%d", second.connectHost, second.connectPort)
	}
	if second.startURI.Scheme != "https" {
		t.Errorf("second scheme = %q, want https", second.startURI.Scheme)
	}
	if first.startURI.Scheme != "http" {
		t.Errorf("first scheme = %q, want http", first.startURI.Scheme)
	}
	if first.startMethod != second.startMethod {
		t.Error("retry changed the method")
	}
	if got, want := second.startHeaders.Get("Accept"), first.startHeaders.Get("Accept"); got != want {
		t.Errorf("retry changed headers: %q vs %q", got, want)
	}
	if !bytes.Equal(first.written.Bytes(), second.written.Bytes()) {
		t.Error("retry changed the request body")
	}

	second.respond(200, "OK", http.Header{}, []byte("ok"), true)
	if client.startCode != 200 || client.body.String() != "ok" {
		t.Errorf("client saw %d %q", client.startCode, client.body.String())
	}
}

func TestAddNotAllowedEmittedOnceOnOverflow(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, rec := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/big")
	sess.Add(client)

	up := um.requests[0]
	up.respond(200, "OK", http.Header{}, bytes.Repeat([]byte("x"), maxInitialBuffer), false)

	if rec.addNotAllowed != 0 {
		t.Fatalf("addNotAllowed fired early: %d", rec.addNotAllowed)
	}

	// 추가 데이터가 초기 버퍼 상한을 넘기면 buffering 이 꺼집니다.
	up.feed(bytes.Repeat([]byte("y"), 1024), false)

	if rec.addNotAllowed != 1 {
		t.Fatalf("addNotAllowed count = %d, want 1", rec.addNotAllowed)
	}

	client.ackAll()
	up.feed(bytes.Repeat([]byte("z"), 1024), true)
	client.ackAll()

	if rec.addNotAllowed != 1 {
		t.Errorf("addNotAllowed count = %d after stream end, want 1", rec.addNotAllowed)
	}

	client.finish()
	if rec.passthrough != 1 {
		t.Errorf("finishedByPassthrough count = %d, want 1", rec.passthrough)
	}
}

func TestBackpressureGatesUpstreamReads(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/stream")
	sess.Add(client)

	up := um.requests[0]
	up.respond(200, "OK", http.Header{}, bytes.Repeat([]byte("x"), maxInitialBuffer), false)

	// 오버플로로 buffering 을 끕니다.
	up.feed(bytes.Repeat([]byte("y"), 100), false)

	written := client.body.Len()

	// 클라이언트가 ack 하지 않은 상태에서는 더 읽지 않아야 합니다.
	up.feed(bytes.Repeat([]byte("z"), 200), false)
	if client.body.Len() != written {
		t.Fatalf("session read upstream while client had pending writes")
	}
	if len(up.pending) != 200 {
		t.Fatalf("upstream pending = %d, want 200", len(up.pending))
	}

	// 전부 ack 하면 밀린 청크가 흘러갑니다.
	client.ackAll()
	if client.body.Len() != written+200 {
		t.Fatalf("client body = %d, want %d", client.body.Len(), written+200)
	}

	_ = sess
}

func TestMidResponseUpstreamDrop(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, rec := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/x")
	sess.Add(client)

	payload := bytes.Repeat([]byte("d"), 10*1024)
	up := um.requests[0]
	up.respond(200, "OK", http.Header{}, payload, false)

	up.fail(ErrorGeneric)

	if !bytes.Equal(client.body.Bytes(), payload) {
		t.Errorf("client body = %d bytes, want %d", client.body.Len(), len(payload))
	}
	if !client.ended {
		t.Error("response was not ended after upstream drop")
	}
	if client.errCode != 0 {
		t.Errorf("synthetic error %d sent after headers were flushed", client.errCode)
	}

	client.finish()
	if rec.passthrough != 1 {
		t.Errorf("finishedByPassthrough count = %d, want 1", rec.passthrough)
	}
	_ = sess
}

func TestRouteMissRejectsWith502(t *testing.T) {
	um := &fakeUpstreamManager{}
	sess, _ := newTestSession(um, &fakeDomainMap{entries: map[string]domainmap.Entry{}})

	client := newFakeClient("a", "GET", "http://unknown.example.com/x")
	sess.Add(client)

	if client.errCode != 502 {
		t.Fatalf("error code = %d, want 502", client.errCode)
	}
	if !strings.Contains(client.errMessage, "unknown.example.com") {
		t.Errorf("error message %q should carry the host", client.errMessage)
	}
	if um.created != 0 {
		t.Error("no upstream request should be created without a route")
	}
}

func TestTargetsExhaustedRejectsWith502(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/x")
	sess.Add(client)

	um.requests[0].fail(ErrorConnect)

	if client.errCode != 502 {
		t.Fatalf("error code = %d, want 502", client.errCode)
	}
	if client.errMessage != "Error while proxying to origin." {
		t.Errorf("error message = %q", client.errMessage)
	}
	_ = sess
}

func TestLengthRequiredRejectsWith411(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "POST", "http://example.com/x")
	client.stream.finished = false
	sess.Add(client)

	um.requests[0].fail(ErrorLengthRequired)

	if client.errCode != 411 {
		t.Fatalf("error code = %d, want 411", client.errCode)
	}
	if client.errMessage != "Must provide Content-Length header." {
		t.Errorf("error message = %q", client.errMessage)
	}
	_ = sess
}

func TestCannotAccept(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	a := newFakeClient("a", "GET", "http://example.com/x")
	b := newFakeClient("b", "GET", "http://example.com/x")
	sess.Add(a)
	sess.Add(b)

	sess.CannotAccept()

	for _, c := range []*fakeClient{a, b} {
		if !c.cannotAccept {
			t.Errorf("client %s did not receive cannot-accept", c.rid.ID)
		}
	}
}

func TestHopByHopRequestHeadersStripped(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/x")
	client.rd.Headers.Set("Connection", "keep-alive")
	client.rd.Headers.Set("Keep-Alive", "timeout=5")
	client.rd.Headers.Set("Accept-Encoding", "gzip")
	client.rd.Headers.Set("Content-Encoding", "gzip")
	client.rd.Headers.Set("Transfer-Encoding", "chunked")
	client.rd.Headers.Set("X-Custom", "kept")
	sess.Add(client)

	hdr := um.requests[0].startHeaders
	for _, h := range []string{"Connection", "Keep-Alive", "Accept-Encoding", "Content-Encoding", "Transfer-Encoding"} {
		if hdr.Get(h) != "" {
			t.Errorf("header %s leaked upstream", h)
		}
	}
	if hdr.Get("X-Custom") != "kept" {
		t.Error("ordinary header was dropped")
	}
	_ = sess
}

func TestHopByHopResponseHeadersStripped(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/x")
	sess.Add(client)

	hdr := http.Header{}
	hdr.Set("Connection", "close")
	hdr.Set("Keep-Alive", "timeout=5")
	hdr.Set("Content-Encoding", "gzip")
	hdr.Set("Transfer-Encoding", "chunked")
	hdr.Set("Content-Length", "2")
	um.requests[0].respond(200, "OK", hdr, []byte("ok"), true)

	for _, h := range []string{"Connection", "Keep-Alive", "Content-Encoding", "Transfer-Encoding"} {
		if client.startHeaders.Get(h) != "" {
			t.Errorf("header %s leaked to client", h)
		}
	}
	// Content-Length 가 있으면 chunked 를 덧붙이지 않습니다.
	if client.startHeaders.Get("Transfer-Encoding") != "" {
		t.Error("Transfer-Encoding added despite Content-Length")
	}
	_ = sess
}

func TestGripSigMintedForUntrustedRequest(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))
	sess.SetDefaultSigKey("gateway", []byte("signing-secret"))

	client := newFakeClient("a", "GET", "http://example.com/x")
	client.rd.Headers.Set("Grip-Sig", "bogus-client-value")
	sess.Add(client)

	got := um.requests[0].startHeaders.Get("Grip-Sig")
	if got == "" || got == "bogus-client-value" {
		t.Fatalf("Grip-Sig = %q, want a freshly minted token", got)
	}
	if !token.Validate(got, []byte("signing-secret")) {
		t.Error("minted Grip-Sig does not validate under the signing key")
	}
}

func TestGripSigPassThroughForTrustedUpstream(t *testing.T) {
	upstreamKey := []byte("upstream-secret")
	trusted, err := token.Encode("other-proxy", upstreamKey)
	if err != nil {
		t.Fatal(err)
	}

	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))
	sess.SetDefaultSigKey("gateway", []byte("signing-secret"))
	sess.SetDefaultUpstreamKey(upstreamKey)
	sess.SetXffRules(XffRule{Truncate: 0, Append: true}, XffRule{Truncate: -1, Append: true})

	client := newFakeClient("a", "GET", "http://example.com/x")
	client.rd.Headers.Set("Grip-Sig", trusted)
	client.rd.Headers.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	sess.Add(client)

	hdr := um.requests[0].startHeaders
	if hdr.Get("Grip-Sig") != trusted {
		t.Error("trusted Grip-Sig should be forwarded untouched")
	}
	// 신뢰된 규칙: 기존 체인 유지 + peer 추가.
	if got := hdr.Get("X-Forwarded-For"); got != "1.1.1.1, 2.2.2.2, 10.0.0.1" {
		t.Errorf("X-Forwarded-For = %q", got)
	}
}

func TestXffUntrustedRuleTruncates(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))
	sess.SetXffRules(XffRule{Truncate: 0, Append: true}, XffRule{Truncate: -1, Append: true})

	client := newFakeClient("a", "GET", "http://example.com/x")
	client.rd.Headers.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	sess.Add(client)

	if got := um.requests[0].startHeaders.Get("X-Forwarded-For"); got != "10.0.0.1" {
		t.Errorf("X-Forwarded-For = %q, want only the peer", got)
	}
}

func TestXForwardedProtocolRewrite(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))
	sess.SetUseXForwardedProtocol(true)

	client := newFakeClient("a", "GET", "https://example.com/x")
	client.https = true
	client.rd.Headers.Set("X-Forwarded-Protocol", "spoofed")
	sess.Add(client)

	if got := um.requests[0].startHeaders.Get("X-Forwarded-Protocol"); got != "https" {
		t.Errorf("X-Forwarded-Protocol = %q, want https", got)
	}
}

func TestLateAddCatchesUpWithBufferedPrefix(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	a := newFakeClient("a", "GET", "http://example.com/feed")
	sess.Add(a)

	up := um.requests[0]
	up.respond(200, "OK", http.Header{}, []byte("prefix-"), false)

	b := newFakeClient("b", "GET", "http://example.com/feed")
	sess.Add(b)

	if b.startCode != 200 {
		t.Fatalf("late client code = %d", b.startCode)
	}
	if got := b.body.String(); got != "prefix-" {
		t.Fatalf("late client prefix = %q", got)
	}

	a.ackAll()
	b.ackAll()
	up.feed([]byte("tail"), true)

	if a.body.String() != b.body.String() {
		t.Errorf("fan-out mismatch: %q vs %q", a.body.String(), b.body.String())
	}
	if a.body.String() != "prefix-tail" {
		t.Errorf("body = %q, want prefix-tail", a.body.String())
	}
}

func TestAcceptResponseTooLargeRejects(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, rec := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "GET", "http://example.com/sub")
	sess.Add(client)

	hdr := http.Header{}
	hdr.Set("Content-Type", "application/grip-instruct")
	up := um.requests[0]
	up.respond(200, "OK", hdr, bytes.Repeat([]byte("i"), maxInitialBuffer), false)

	if sess.State() != Accepting {
		t.Fatalf("expected Accepting, got %v", sess.State())
	}

	up.feed(bytes.Repeat([]byte("i"), 1), false)

	if client.errCode != 502 {
		t.Fatalf("error code = %d, want 502", client.errCode)
	}
	if client.errMessage != "GRIP instruct response too large." {
		t.Errorf("error message = %q", client.errMessage)
	}
	if len(rec.accepted) != 0 {
		t.Error("handoff must not fire after overflow")
	}
}

func TestClientErrorDoesNotFailSession(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, rec := newTestSession(um, singleTargetMap("example.com"))

	a := newFakeClient("a", "GET", "http://example.com/x")
	b := newFakeClient("b", "GET", "http://example.com/x")
	sess.Add(a)
	sess.Add(b)

	up := um.requests[0]
	up.respond(200, "OK", http.Header{}, []byte("part1-"), false)

	// a 의 다운스트림 쓰기가 실패합니다.
	a.onErrorResponding()

	a.ackAll()
	b.ackAll()
	up.feed([]byte("part2"), true)

	if got := a.body.String(); got != "part1-" {
		t.Errorf("errored client received more data: %q", got)
	}
	if got := b.body.String(); got != "part1-part2" {
		t.Errorf("healthy client body = %q", got)
	}
	if !b.ended {
		t.Error("healthy client response was not ended")
	}

	a.finish()
	b.finish()
	if rec.passthrough != 1 {
		t.Errorf("finishedByPassthrough count = %d, want 1", rec.passthrough)
	}
}

func TestRequestBodyStreamedUpstream(t *testing.T) {
	um := &fakeUpstreamManager{requests: []*fakeUpstream{{}}}
	sess, _ := newTestSession(um, singleTargetMap("example.com"))

	client := newFakeClient("a", "POST", "http://example.com/ingest")
	client.rd.Body = []byte("head-")
	client.stream.finished = false
	sess.Add(client)

	up := um.requests[0]
	if got := up.written.String(); got != "head-" {
		t.Fatalf("initial body = %q", got)
	}
	if up.bodyEnded {
		t.Fatal("body ended before input finished")
	}

	// client 본문 읽기는 upstream ack 를 기다리지 않고 readyRead 마다
	// 일어납니다. 여기서는 초기 본문 ack 를 먼저 보내 둡니다.
	up.bytesWritten(len("head-"))

	client.stream.pushBody(t, []byte("tail"), true)

	if got := up.written.String(); got != "head-tail" {
		t.Errorf("streamed body = %q, want head-tail", got)
	}
	if !up.bodyEnded {
		t.Error("upstream body not ended after input finished")
	}
	_ = sess
}
