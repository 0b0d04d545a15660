package proxy

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dalbodeule/grip-gate/internal/domainmap"
	"github.com/dalbodeule/grip-gate/internal/handoff"
	"github.com/dalbodeule/grip-gate/internal/logging"
	"github.com/dalbodeule/grip-gate/internal/observability"
	"github.com/dalbodeule/grip-gate/internal/token"
)

// 버퍼 상한. accept 경로는 요청/응답 본문을 통째로 보관해야 하므로
// 이 값을 넘으면 accept 가 불가능해집니다.
const (
	maxAcceptRequestBody  = 100000
	maxAcceptResponseBody = 100000

	maxInitialBuffer = 100000
	maxStreamBuffer  = 100000
)

// State 는 세션의 최상위 상태입니다.
type State int

const (
	Stopped State = iota
	Requesting
	Accepting
	Responding
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Requesting:
		return "requesting"
	case Accepting:
		return "accepting"
	case Responding:
		return "responding"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// clientState 는 클라이언트별 하위 상태입니다.
type clientState int

const (
	clientWaitingForResponse clientState = iota
	clientResponding
	clientResponded
	clientErrored
	clientPausing
	clientPaused
)

// ClientEntry 는 attach 된 클라이언트 하나의 장부입니다.
// bytesToWrite 가 -1 이면 이 클라이언트로는 더 이상 쓰기를 시도하지 않습니다.
type ClientEntry struct {
	rs           RequestSession
	state        clientState
	bytesToWrite int
}

// 양쪽 hop 에만 의미가 있어 중계하지 않는 헤더들입니다.
var hopRequestHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Accept-Encoding",
	"Content-Encoding",
	"Transfer-Encoding",
}

var hopResponseHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Content-Encoding",
	"Transfer-Encoding",
}

// Session 은 프록시 교환 한 건의 상태 기계입니다. upstream 요청 하나와
// 클라이언트 request session N 개를 소유하고 모든 전이를 주도합니다.
//
// Session 의 모든 메서드(이벤트 콜백 포함)는 같은 Loop 위에서 실행되어야
// 하며, 내부에는 어떤 락도 없습니다.
//
// Session is the state machine for one logical proxied exchange. Every
// method, including registered event callbacks, must run on the same Loop;
// there is no internal locking.
type Session struct {
	log             logging.Logger
	upstreamManager UpstreamManager
	domains         domainmap.DomainMap
	events          Events

	state            State
	isHTTPS          bool
	channelPrefix    string
	targets          []domainmap.Target
	inRequest        RequestStream
	upstream         UpstreamRequest
	addAllowed       bool
	haveInspectData  bool
	inspectData      any
	acceptTypes      map[string]bool
	entries          []*ClientEntry
	entriesBySession map[RequestSession]*ClientEntry

	requestData         handoff.RequestData
	responseData        handoff.ResponseData
	requestBody         BodyBuffer
	responseBody        BodyBuffer
	initialRequestBody  []byte
	requestBytesToWrite int
	total               int
	buffering           bool

	defaultSigIss         string
	defaultSigKey         []byte
	defaultUpstreamKey    []byte
	passToUpstream        bool
	useXForwardedProtocol bool
	xffRule               XffRule
	xffTrustedRule        XffRule

	finished bool
}

// NewSession 은 Stopped 상태의 세션을 생성합니다.
func NewSession(logger logging.Logger, um UpstreamManager, domains domainmap.DomainMap) *Session {
	s := &Session{
		log: logger.With(logging.Fields{
			"component":  "proxy_session",
			"session_id": uuid.NewString(),
		}),
		upstreamManager:  um,
		domains:          domains,
		state:            Stopped,
		addAllowed:       true,
		acceptTypes:      map[string]bool{"application/grip-instruct": true},
		entriesBySession: make(map[RequestSession]*ClientEntry),
		xffRule:          XffRule{Truncate: -1},
		xffTrustedRule:   XffRule{Truncate: -1},
	}
	observability.SessionsStartedTotal.Inc()
	return s
}

// SetDefaultSigKey 는 라우트에 서명 정보가 없을 때 사용할 기본 issuer/key 를 설정합니다.
func (s *Session) SetDefaultSigKey(iss string, key []byte) {
	s.defaultSigIss = iss
	s.defaultSigKey = key
}

// SetDefaultUpstreamKey 는 inbound Grip-Sig 검증용 키를 설정합니다.
// 설정되어 있고 서명이 유효하면 요청은 신뢰된 상위 프록시 경유로 취급됩니다.
func (s *Session) SetDefaultUpstreamKey(key []byte) {
	s.defaultUpstreamKey = key
}

// SetUseXForwardedProtocol 은 X-Forwarded-Protocol 재작성 기능을 켭니다.
func (s *Session) SetUseXForwardedProtocol(on bool) {
	s.useXForwardedProtocol = on
}

// SetXffRules 는 X-Forwarded-For 가공 규칙을 설정합니다.
// trusted 는 passToUpstream 인 요청에, untrusted 는 그 외에 적용됩니다.
func (s *Session) SetXffRules(untrusted, trusted XffRule) {
	s.xffRule = untrusted
	s.xffTrustedRule = trusted
}

// SetInspectData 는 handoff 에 실어 보낼 불투명 페이로드를 저장합니다.
func (s *Session) SetInspectData(idata any) {
	s.haveInspectData = true
	s.inspectData = idata
}

// SetEvents 는 outbound 이벤트 콜백을 등록합니다. 첫 Add 전에 호출해야 합니다.
func (s *Session) SetEvents(ev Events) {
	s.events = ev
}

// State 는 현재 최상위 상태를 반환합니다.
func (s *Session) State() State {
	return s.state
}

// CanAdd 는 지금 Add 가 허용되는지를 반환합니다. 세션과 같은 Loop 에서만
// 호출해야 합니다.
func (s *Session) CanAdd() bool {
	return !s.finished && s.addAllowed && s.state != Accepting
}

// Total 은 지금까지 upstream 에서 수신한 누적 바이트 수입니다. 진단용입니다.
func (s *Session) Total() int {
	return s.total
}

// Add 는 클라이언트 request session 을 세션에 붙입니다.
//
// 첫 Add 는 라우트를 결정하고 upstream 요청을 시작합니다. Requesting 중의
// Add 는 응답을 함께 기다리고, Responding 중의 Add 는 이미 관측된 응답
// prefix 를 따라잡습니다. addNotAllowed 이벤트 이후에 Add 하지 않는 것은
// 호출자와의 계약입니다.
func (s *Session) Add(rs RequestSession) {
	if s.finished || !s.addAllowed {
		// 계약 위반. 원래 설계상 도달할 수 없는 경로입니다.
		s.log.Error("add after addNotAllowed", logging.Fields{
			"state": s.state.String(),
		})
		return
	}

	ent := &ClientEntry{rs: rs, state: clientWaitingForResponse}
	s.entries = append(s.entries, ent)
	s.entriesBySession[rs] = ent

	rs.OnBytesWritten(func(count int) { s.clientBytesWritten(rs, count) })
	rs.OnErrorResponding(func() { s.clientErrorResponding(rs) })
	rs.OnFinished(func() { s.clientFinished(rs) })
	rs.OnPaused(func() { s.clientPaused(rs) })

	switch s.state {
	case Stopped:
		s.start(rs)
	case Requesting:
		// 응답이 올 때까지 함께 대기합니다.
	case Responding:
		// 진행 중인 응답에 따라잡힙니다.
		ent.state = clientResponding
		rs.StartResponse(s.responseData.Code, s.responseData.Reason, cloneHeader(s.responseData.Headers))

		if !s.responseBody.IsEmpty() {
			body := s.responseBody.Snapshot()
			ent.bytesToWrite += len(body)
			rs.WriteResponseBody(body)
		}
	case Accepting:
		// accept 버퍼링 중의 add 는 외부 계약상 발생하지 않습니다.
		s.log.Error("add while accepting", nil)
	}
}

// start 는 첫 클라이언트의 요청 데이터를 채택하고 upstream 요청을 시작합니다.
func (s *Session) start(rs RequestSession) {
	rd := rs.RequestData()

	host := ""
	path := "/"
	if rd.URI != nil {
		host = rd.URI.Hostname()
		path = rd.URI.EscapedPath()
	}

	s.isHTTPS = rs.IsHTTPS()

	s.requestData = rd
	s.requestData.Headers = cloneHeader(rd.Headers)
	s.requestBody.Append(rd.Body)
	s.requestData.Body = nil

	// inbound hop 에만 적용되는 헤더는 중계하지 않습니다.
	for _, h := range hopRequestHeaders {
		s.requestData.Headers.Del(h)
	}

	entry := s.domains.Entry(host, path, s.isHTTPS)
	if entry.IsNull() {
		s.log.Warn("no route for host", logging.Fields{"host": host})
		s.rejectAll(502, "Bad Gateway", fmt.Sprintf("No route for host: %s", host))
		return
	}

	sigIss := s.defaultSigIss
	sigKey := s.defaultSigKey
	if entry.SigIss != "" && entry.SigKey != "" {
		sigIss = entry.SigIss
		sigKey = []byte(entry.SigKey)
	}

	s.channelPrefix = entry.Prefix
	s.targets = entry.Targets

	s.log.Debug("routes for host", logging.Fields{
		"host":   host,
		"routes": len(s.targets),
	})

	// 이미 grip proxy 를 거쳐 들어온 요청인지 확인합니다.
	if len(s.defaultUpstreamKey) > 0 {
		if tok := s.requestData.Headers.Get("Grip-Sig"); tok != "" {
			if token.Validate(tok, s.defaultUpstreamKey) {
				s.log.Debug("passing to upstream", nil)
				s.passToUpstream = true
			} else {
				s.log.Debug("signature present but invalid", nil)
			}
		}
	}

	if !s.passToUpstream {
		// Grip-Sig 를 제거하거나 새로 서명합니다.
		s.requestData.Headers.Del("Grip-Sig")
		if sigIss != "" && len(sigKey) > 0 {
			tok, err := token.Encode(sigIss, sigKey)
			if err != nil {
				s.log.Warn("failed to sign request", logging.Fields{"error": err.Error()})
			} else {
				s.requestData.Headers.Set("Grip-Sig", tok)
			}
		}
	}

	if s.useXForwardedProtocol {
		s.requestData.Headers.Del("X-Forwarded-Protocol")
		if s.isHTTPS {
			s.requestData.Headers.Set("X-Forwarded-Protocol", "https")
		}
	}

	xr := s.xffRule
	if s.passToUpstream {
		xr = s.xffTrustedRule
	}

	chain := splitChain(s.requestData.Headers.Values("X-Forwarded-For"))
	s.requestData.Headers.Del("X-Forwarded-For")
	chain = xr.Apply(chain, rs.PeerAddress())
	if len(chain) > 0 {
		s.requestData.Headers.Set("X-Forwarded-For", joinChain(chain))
	}

	s.state = Requesting
	s.buffering = true

	if !rs.IsRetry() {
		s.inRequest = rs.Request()
		s.inRequest.OnReadyRead(s.inRequestReadyRead)
		s.inRequest.OnError(s.inRequestError)

		s.requestBody.Append(s.inRequest.ReadBody())
	}

	s.initialRequestBody = s.requestBody.Snapshot()

	if s.requestBody.Size() > maxAcceptRequestBody {
		s.requestBody.Clear()
		s.buffering = false
	}

	s.tryNextTarget()
}

// CannotAccept 는 handoff 를 수행할 수 없다는 외부 신호입니다.
// 아직 오류 상태가 아닌 모든 클라이언트에 cannot-accept 응답을 보냅니다.
func (s *Session) CannotAccept() {
	for _, ent := range s.entries {
		if ent.state != clientErrored {
			ent.state = clientResponded
			ent.bytesToWrite = -1
			ent.rs.RespondCannotAccept()
		}
	}
}

func (s *Session) pendingWrites() bool {
	for _, ent := range s.entries {
		if ent.bytesToWrite != -1 && ent.bytesToWrite > 0 {
			return true
		}
	}
	return false
}

func (s *Session) closeUpstream() {
	if s.upstream != nil {
		s.upstream.Close()
		s.upstream = nil
	}
}

func (s *Session) tryNextTarget() {
	if len(s.targets) == 0 {
		s.rejectAll(502, "Bad Gateway", "Error while proxying to origin.")
		return
	}

	target := s.targets[0]
	s.targets = s.targets[1:]

	uri := *s.requestData.URI
	if target.SSL {
		uri.Scheme = "https"
	} else {
		uri.Scheme = "http"
	}

	s.log.Debug("forwarding to target", logging.Fields{
		"host": target.Host,
		"port": target.Port,
	})
	observability.TargetAttemptsTotal.Inc()

	req := s.upstreamManager.CreateRequest()
	s.upstream = req

	req.OnReadyRead(s.upstreamReadyRead)
	req.OnBytesWritten(s.upstreamBytesWritten)
	req.OnError(s.upstreamError)

	if target.Trusted {
		req.SetIgnorePolicies(true)
	}
	if target.Insecure {
		req.SetIgnoreTLSErrors(true)
	}

	req.SetConnectHost(target.Host)
	req.SetConnectPort(target.Port)

	req.Start(s.requestData.Method, &uri, s.requestData.Headers)

	if len(s.initialRequestBody) > 0 {
		s.requestBytesToWrite += len(s.initialRequestBody)
		req.WriteBody(s.initialRequestBody)
	}

	if s.inRequest == nil || s.inRequest.IsInputFinished() {
		req.EndBody()
	}
}

func (s *Session) tryRequestRead() {
	if s.inRequest == nil || s.upstream == nil {
		return
	}

	buf := s.inRequest.ReadBody()
	if len(buf) == 0 {
		return
	}

	s.log.Debug("input chunk", logging.Fields{"size": len(buf)})

	if s.buffering {
		if s.requestBody.Size()+len(buf) > maxAcceptRequestBody {
			s.requestBody.Clear()
			s.buffering = false
		} else {
			s.requestBody.Append(buf)
		}
	}

	s.requestBytesToWrite += len(buf)
	s.upstream.WriteBody(buf)
}

// rejectAll 은 아직 응답이 시작되지 않은 모든 클라이언트에 오류 응답을 보냅니다.
func (s *Session) rejectAll(code int, reason, message string) {
	observability.ProxyErrorsTotal.WithLabelValues(fmt.Sprintf("%d", code)).Inc()
	s.closeUpstream()

	for _, ent := range s.entries {
		if ent.state != clientErrored {
			ent.state = clientResponded
			ent.bytesToWrite = -1
			ent.rs.RespondError(code, reason, message)
		}
	}
}

// destroyAll 은 Responding 중 upstream 이 죽었을 때 응답 본문을 조기 종료합니다.
// 헤더가 이미 나갔으므로 합성 오류 페이지는 만들 수 없습니다.
func (s *Session) destroyAll() {
	s.closeUpstream()

	for _, ent := range s.entries {
		if ent.state == clientResponding {
			ent.state = clientResponded
			ent.bytesToWrite = -1
			ent.rs.EndResponseBody()
		}
	}
}

func (s *Session) tryResponseRead() {
	// buffering 이 꺼진 뒤에는 가장 느린 클라이언트가 다 받을 때까지 읽지 않습니다.
	if !s.buffering && s.pendingWrites() {
		return
	}
	if s.upstream == nil {
		return
	}

	buf := s.upstream.ReadBody(maxStreamBuffer)
	if len(buf) > 0 {
		s.total += len(buf)
		s.log.Debug("upstream data", logging.Fields{
			"recv":  len(buf),
			"total": s.total,
		})
		observability.UpstreamBytesTotal.Add(float64(len(buf)))

		if s.state == Accepting {
			if s.responseBody.Size()+len(buf) > maxAcceptResponseBody {
				s.rejectAll(502, "Bad Gateway", "GRIP instruct response too large.")
				return
			}

			s.responseBody.Append(buf)
		} else { // Responding
			wasAllowed := s.addAllowed

			if s.buffering {
				if s.responseBody.Size()+len(buf) > maxInitialBuffer {
					s.responseBody.Clear()
					s.buffering = false
					s.addAllowed = false
				} else {
					s.responseBody.Append(buf)
				}
			}

			s.log.Debug("writing to clients", logging.Fields{"size": len(buf)})

			for _, ent := range s.entries {
				if ent.state == clientResponding {
					ent.bytesToWrite += len(buf)
					ent.rs.WriteResponseBody(buf)
				}
			}

			if wasAllowed && !s.addAllowed {
				s.emitAddNotAllowed()
				if s.finished {
					return
				}
			}
		}
	}

	s.checkUpstreamFinished()
}

func (s *Session) emitAddNotAllowed() {
	if s.events.AddNotAllowed != nil {
		s.events.AddNotAllowed()
	}
}

func (s *Session) checkUpstreamFinished() {
	if s.upstream == nil || !s.upstream.IsFinished() {
		return
	}

	s.log.Debug("response from target finished", nil)

	if !s.buffering && s.pendingWrites() {
		s.log.Debug("waiting for clients to drain before finishing", nil)
		return
	}

	s.closeUpstream()

	if s.state == Accepting {
		for _, ent := range s.entries {
			ent.state = clientPausing
			ent.rs.Pause()
		}
	} else { // Responding
		for _, ent := range s.entries {
			if ent.state == clientResponding {
				ent.state = clientResponded
				ent.rs.EndResponseBody()
			}
		}

		// 응답이 전부 수신되었으므로 이후의 add 는 차단합니다.
		if s.addAllowed {
			s.addAllowed = false
			s.emitAddNotAllowed()
		}
	}
}

func (s *Session) inRequestReadyRead() {
	s.tryRequestRead()

	if s.inRequest != nil && s.inRequest.IsInputFinished() && s.upstream != nil {
		s.upstream.EndBody()
	}
}

func (s *Session) inRequestError() {
	s.log.Warn("error reading request", nil)

	s.rejectAll(500, "Internal Server Error", "Primary shared request failed.")
}

func (s *Session) upstreamReadyRead() {
	if s.upstream == nil {
		return
	}

	s.log.Debug("data from target", nil)

	if s.state == Requesting {
		s.responseData.Code = s.upstream.ResponseCode()
		s.responseData.Reason = s.upstream.ResponseReason()
		s.responseData.Headers = cloneHeader(s.upstream.ResponseHeaders())
		s.responseBody.Append(s.upstream.ReadBody(maxInitialBuffer))

		s.total += s.responseBody.Size()
		s.log.Debug("recv total", logging.Fields{"total": s.total})

		contentType := s.responseData.Headers.Get("Content-Type")
		if at := strings.IndexByte(contentType, ';'); at != -1 {
			contentType = contentType[:at]
		}

		if !s.passToUpstream && s.acceptTypes[contentType] {
			if !s.buffering {
				s.rejectAll(502, "Bad Gateway", "Request too large to accept GRIP instruct.")
				return
			}

			s.state = Accepting
		} else {
			s.state = Responding

			// outgoing hop 에만 적용되는 헤더는 중계하지 않습니다.
			for _, h := range hopResponseHeaders {
				s.responseData.Headers.Del(h)
			}

			if s.responseData.Headers.Get("Content-Length") == "" && s.responseData.Headers.Get("Transfer-Encoding") == "" {
				s.responseData.Headers.Set("Transfer-Encoding", "chunked")
			}

			for _, ent := range s.entries {
				if ent.state == clientErrored {
					continue
				}

				ent.state = clientResponding
				ent.rs.StartResponse(s.responseData.Code, s.responseData.Reason, cloneHeader(s.responseData.Headers))

				if !s.responseBody.IsEmpty() {
					body := s.responseBody.Snapshot()
					ent.bytesToWrite += len(body)
					ent.rs.WriteResponseBody(body)
				}
			}
		}

		s.checkUpstreamFinished()
	} else {
		// Accepting 또는 Responding
		s.tryResponseRead()
	}
}

func (s *Session) upstreamBytesWritten(count int) {
	s.requestBytesToWrite -= count
	if s.requestBytesToWrite < 0 {
		s.requestBytesToWrite = 0
	}

	if s.requestBytesToWrite == 0 {
		s.tryRequestRead()
	}
}

func (s *Session) upstreamError() {
	if s.upstream == nil {
		return
	}

	e := s.upstream.ErrorCondition()
	s.log.Debug("target error", logging.Fields{
		"state":     s.state.String(),
		"condition": int(e),
	})

	if s.state == Requesting || s.state == Accepting {
		tryAgain := false

		switch e {
		case ErrorLengthRequired:
			s.rejectAll(411, "Length Required", "Must provide Content-Length header.")
		case ErrorConnect, ErrorConnectTimeout, ErrorTLS:
			// 연결 단계 오류는 응답이 시작되기 전에만 발생할 수 있습니다.
			tryAgain = true
		default:
			s.rejectAll(502, "Bad Gateway", "Error while proxying to origin.")
		}

		if tryAgain {
			s.closeUpstream()
			s.tryNextTarget()
		}
	} else if s.state == Responding {
		// 이미 응답 중이므로 오류 응답을 만들 수 없습니다.
		s.destroyAll()
	}
}

func (s *Session) clientBytesWritten(rs RequestSession, count int) {
	ent := s.entriesBySession[rs]
	if ent == nil {
		return
	}

	s.log.Debug("response bytes written", logging.Fields{
		"rid":   rs.Rid().ID,
		"count": count,
	})

	if ent.bytesToWrite != -1 {
		ent.bytesToWrite -= count
		if ent.bytesToWrite < 0 {
			ent.bytesToWrite = 0
		}
	}

	// 전원이 따라잡았으면 다음 청크를 읽습니다.
	if !s.buffering && s.upstream != nil && !s.pendingWrites() {
		s.tryResponseRead()
	}
}

func (s *Session) clientFinished(rs RequestSession) {
	ent := s.entriesBySession[rs]
	if ent == nil {
		return
	}

	s.log.Debug("response finished", logging.Fields{"rid": rs.Rid().ID})

	if s.events.RequestSessionDestroyed != nil {
		s.events.RequestSessionDestroyed(rs)
	}
	if s.finished {
		return
	}

	delete(s.entriesBySession, rs)
	for i, e := range s.entries {
		if e == ent {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}

	if len(s.entries) == 0 {
		s.log.Debug("finished by passthrough", nil)
		observability.SessionsFinishedTotal.WithLabelValues("passthrough").Inc()
		s.finished = true
		if s.events.FinishedByPassthrough != nil {
			s.events.FinishedByPassthrough()
		}
	}
}

func (s *Session) clientPaused(rs RequestSession) {
	ent := s.entriesBySession[rs]
	if ent == nil || ent.state != clientPausing {
		return
	}

	s.log.Debug("response paused", logging.Fields{"rid": rs.Rid().ID})

	ent.state = clientPaused

	for _, e := range s.entries {
		if e.state != clientPaused {
			return
		}
	}

	// 전원 paused: handoff 스냅샷을 조립합니다.
	adata := &handoff.AcceptData{
		HaveResponse:  true,
		ChannelPrefix: s.channelPrefix,
	}

	for _, e := range s.entries {
		ss := e.rs.Request().ServerState()

		adata.Requests = append(adata.Requests, handoff.ResumptionRecord{
			Rid:             e.rs.Rid(),
			HTTPS:           e.rs.IsHTTPS(),
			PeerAddress:     e.rs.PeerAddress(),
			AutoCrossOrigin: e.rs.AutoCrossOrigin(),
			JsonpCallback:   e.rs.JsonpCallback(),
			InSeq:           ss.InSeq,
			OutSeq:          ss.OutSeq,
			OutCredits:      ss.OutCredits,
			UserData:        ss.UserData,
		})
	}

	adata.RequestData = s.requestData
	adata.RequestData.Body = s.requestBody.Take()

	adata.Response = s.responseData
	adata.Response.Body = s.responseBody.Take()

	adata.HaveInspectData = s.haveInspectData
	adata.InspectData = s.inspectData

	s.log.Debug("finished for accept", nil)
	observability.SessionsFinishedTotal.WithLabelValues("accept").Inc()

	s.entries = nil
	s.entriesBySession = make(map[RequestSession]*ClientEntry)
	s.finished = true

	if s.events.FinishedForAccept != nil {
		s.events.FinishedForAccept(adata)
	}
}

func (s *Session) clientErrorResponding(rs RequestSession) {
	ent := s.entriesBySession[rs]
	if ent == nil || ent.state == clientErrored {
		return
	}

	s.log.Debug("response error", logging.Fields{"rid": rs.Rid().ID})

	// 이 클라이언트로의 응답 시도를 중단합니다. finished 이벤트가 곧 따라옵니다.
	ent.state = clientErrored
	ent.bytesToWrite = -1
}

func cloneHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, vs := range h {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
