package handoff

import (
	"net/http"
	"net/url"
)

// Rid 는 request session 의 식별자입니다. (sender, id) 쌍으로 구성되며
// long-poll 서브시스템이 전송 계층에서 세션을 되찾을 때 사용합니다.
type Rid struct {
	Sender string
	ID     string
}

// RequestData 는 세션 간에 전달되는 HTTP 요청을 표현합니다.
type RequestData struct {
	Method  string
	URI     *url.URL
	Headers http.Header
	Body    []byte
}

// ResponseData 는 세션 간에 전달되는 HTTP 응답을 표현합니다.
type ResponseData struct {
	Code    int
	Reason  string
	Headers http.Header
	Body    []byte
}

// ServerState 는 클라이언트 전송 계층의 재개 지점 스냅샷입니다.
// in/out 시퀀스와 남은 전송 크레딧, 전송 계층이 보관 중이던 불투명 데이터를 담습니다.
type ServerState struct {
	InSeq      int
	OutSeq     int
	OutCredits int
	UserData   any
}

// ResumptionRecord 는 handoff 시점에 클라이언트 하나를 재개하는 데 필요한 정보입니다.
// ResumptionRecord captures everything needed to resume one paused client.
type ResumptionRecord struct {
	Rid             Rid
	HTTPS           bool
	PeerAddress     string
	AutoCrossOrigin bool
	JsonpCallback   string
	InSeq           int
	OutSeq          int
	OutCredits      int
	UserData        any
}

// AcceptData 는 accept handoff 시점에 조립되는 스냅샷 값입니다.
// 모든 클라이언트가 Paused 상태일 때 세션이 이 값을 만들어
// finishedForAccept 이벤트로 내보냅니다.
//
// AcceptData is the snapshot emitted with finishedForAccept once every
// attached client is paused.
type AcceptData struct {
	Requests []ResumptionRecord

	RequestData RequestData

	HaveInspectData bool
	InspectData     any

	HaveResponse bool
	Response     ResponseData

	ChannelPrefix string
}
