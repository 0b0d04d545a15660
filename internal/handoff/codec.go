package handoff

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"google.golang.org/protobuf/proto"

	handoffpb "github.com/dalbodeule/grip-gate/internal/handoff/pb"
)

// defaultDecoderBufferSize 는 스트림 소켓에서 JSON 디코더가 안전하게
// 동작하도록 사용하는 버퍼 크기입니다.
const defaultDecoderBufferSize = 64 * 1024

// maxEnvelopeBytes 는 단일 handoff Envelope 의 최대 크기입니다.
// 요청/응답 본문이 각각 100000 바이트로 제한되므로 512KiB 면 충분합니다.
const maxEnvelopeBytes = 512 * 1024

// WireCodec 는 AcceptData 의 직렬화/역직렬화를 추상화합니다.
// JSON, Protobuf, length-prefixed binary 등으로 교체할 때 이 인터페이스만 유지하면 됩니다.
type WireCodec interface {
	Encode(w io.Writer, adata *AcceptData) error
	Decode(r io.Reader, adata *AcceptData) error
}

// jsonCodec 은 JSON 기반 WireCodec 구현입니다.
// 사람이 읽을 수 있는 형식이 필요할 때를 위해 남겨둡니다.
type jsonCodec struct{}

// wireAcceptData 는 JSON 직렬화용 표현입니다. URL 은 문자열로,
// 불투명 값들은 원시 JSON 으로 들고 갑니다.
type wireAcceptData struct {
	Requests []wireResumptionRecord `json:"requests"`
	Request  wireRequestData        `json:"request"`

	HaveInspect bool            `json:"have_inspect,omitempty"`
	Inspect     json.RawMessage `json:"inspect,omitempty"`

	HaveResponse bool             `json:"have_response"`
	Response     wireResponseData `json:"response"`

	ChannelPrefix string `json:"channel_prefix,omitempty"`
}

type wireResumptionRecord struct {
	RidSender       string          `json:"rid_sender"`
	RidID           string          `json:"rid_id"`
	HTTPS           bool            `json:"https,omitempty"`
	PeerAddress     string          `json:"peer_address,omitempty"`
	AutoCrossOrigin bool            `json:"auto_cross_origin,omitempty"`
	JsonpCallback   string          `json:"jsonp_callback,omitempty"`
	InSeq           int             `json:"in_seq"`
	OutSeq          int             `json:"out_seq"`
	OutCredits      int             `json:"out_credits"`
	UserData        json.RawMessage `json:"user_data,omitempty"`
}

type wireRequestData struct {
	Method string              `json:"method"`
	URI    string              `json:"uri"`
	Header map[string][]string `json:"header,omitempty"`
	Body   []byte              `json:"body,omitempty"`
}

type wireResponseData struct {
	Code   int                 `json:"code"`
	Reason string              `json:"reason,omitempty"`
	Header map[string][]string `json:"header,omitempty"`
	Body   []byte              `json:"body,omitempty"`
}

// Encode 는 AcceptData 를 JSON 으로 인코딩해 작성합니다.
// Encode encodes an AcceptData as JSON to the given writer.
func (jsonCodec) Encode(w io.Writer, adata *AcceptData) error {
	wire, err := toWire(adata)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	return enc.Encode(wire)
}

// Decode 는 JSON AcceptData 를 디코딩합니다.
func (jsonCodec) Decode(r io.Reader, adata *AcceptData) error {
	dec := json.NewDecoder(bufio.NewReaderSize(r, defaultDecoderBufferSize))
	var wire wireAcceptData
	if err := dec.Decode(&wire); err != nil {
		return err
	}
	return fromWire(&wire, adata)
}

// protobufCodec 은 Protobuf + length-prefix framing 기반 WireCodec 구현입니다.
// AcceptData 당 [4바이트 big-endian 길이] + [protobuf bytes] 형태로 인코딩합니다.
type protobufCodec struct{}

// Encode 는 AcceptData 를 Protobuf Envelope 로 변환한 뒤, length-prefix 프레이밍으로 기록합니다.
// Encode encodes an AcceptData as a length-prefixed protobuf envelope.
func (protobufCodec) Encode(w io.Writer, adata *AcceptData) error {
	pbEnv, err := ToProtoEnvelope(adata)
	if err != nil {
		return err
	}
	data, err := proto.Marshal(pbEnv)
	if err != nil {
		return fmt.Errorf("protobuf marshal envelope: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("protobuf codec: empty marshaled envelope")
	}

	var lenBuf [4]byte
	if len(data) > maxEnvelopeBytes {
		return fmt.Errorf("protobuf codec: envelope too large: %d bytes", len(data))
	}
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))

	// length prefix 와 payload 를 한 번에 기록해 메시지 경계를 보존합니다.
	frame := make([]byte, 0, 4+len(data))
	frame = append(frame, lenBuf[:]...)
	frame = append(frame, data...)
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("protobuf codec: write frame: %w", err)
	}
	return nil
}

// Decode 는 length-prefix 프레임에서 Protobuf Envelope 를 읽어들여
// AcceptData 로 변환합니다.
func (protobufCodec) Decode(r io.Reader, adata *AcceptData) error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return fmt.Errorf("protobuf codec: read length prefix: %w", err)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n == 0 {
		return fmt.Errorf("protobuf codec: zero-length envelope")
	}
	if n > maxEnvelopeBytes {
		return fmt.Errorf("protobuf codec: envelope too large: %d bytes (max %d)", n, maxEnvelopeBytes)
	}

	buf := make([]byte, int(n))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("protobuf codec: read payload: %w", err)
	}

	var pbEnv handoffpb.Envelope
	if err := proto.Unmarshal(buf, &pbEnv); err != nil {
		return fmt.Errorf("protobuf codec: unmarshal envelope: %w", err)
	}

	return FromProtoEnvelope(&pbEnv, adata)
}

// DefaultCodec 은 현재 런타임에서 사용하는 기본 WireCodec 입니다.
// Protobuf 기반 codec 을 기본으로 사용합니다.
var DefaultCodec WireCodec = protobufCodec{}

// JSONCodec 은 사람이 읽을 수 있는 JSON WireCodec 입니다.
var JSONCodec WireCodec = jsonCodec{}

// ToProtoEnvelope 는 AcceptData 를 Protobuf Envelope 로 변환합니다.
func ToProtoEnvelope(adata *AcceptData) (*handoffpb.Envelope, error) {
	if adata == nil {
		return nil, fmt.Errorf("protobuf codec: nil accept data")
	}

	pbAccept := &handoffpb.AcceptData{
		HaveResponse:  adata.HaveResponse,
		ChannelPrefix: adata.ChannelPrefix,
		HaveInspect:   adata.HaveInspectData,
	}

	if adata.HaveInspectData && adata.InspectData != nil {
		raw, err := json.Marshal(adata.InspectData)
		if err != nil {
			return nil, fmt.Errorf("protobuf codec: marshal inspect data: %w", err)
		}
		pbAccept.Inspect = raw
	}

	for _, rr := range adata.Requests {
		pbRR := &handoffpb.ResumptionRecord{
			RidSender:       rr.Rid.Sender,
			RidId:           rr.Rid.ID,
			Https:           rr.HTTPS,
			PeerAddress:     rr.PeerAddress,
			AutoCrossOrigin: rr.AutoCrossOrigin,
			JsonpCallback:   rr.JsonpCallback,
			InSeq:           int64(rr.InSeq),
			OutSeq:          int64(rr.OutSeq),
			OutCredits:      int64(rr.OutCredits),
		}
		if rr.UserData != nil {
			raw, err := json.Marshal(rr.UserData)
			if err != nil {
				return nil, fmt.Errorf("protobuf codec: marshal user data: %w", err)
			}
			pbRR.UserData = raw
		}
		pbAccept.Requests = append(pbAccept.Requests, pbRR)
	}

	uri := ""
	if adata.RequestData.URI != nil {
		uri = adata.RequestData.URI.String()
	}
	pbAccept.Request = &handoffpb.RequestData{
		Method: adata.RequestData.Method,
		Uri:    uri,
		Header: toProtoHeader(adata.RequestData.Headers),
		Body:   adata.RequestData.Body,
	}

	pbAccept.Response = &handoffpb.ResponseData{
		Code:   int32(adata.Response.Code),
		Reason: adata.Response.Reason,
		Header: toProtoHeader(adata.Response.Headers),
		Body:   adata.Response.Body,
	}

	return &handoffpb.Envelope{
		Payload: &handoffpb.Envelope_Accept{
			Accept: pbAccept,
		},
	}, nil
}

// FromProtoEnvelope 는 Protobuf Envelope 를 AcceptData 로 변환합니다.
func FromProtoEnvelope(pbEnv *handoffpb.Envelope, adata *AcceptData) error {
	payload, ok := pbEnv.Payload.(*handoffpb.Envelope_Accept)
	if !ok {
		return fmt.Errorf("protobuf codec: unsupported payload type %T", pbEnv.Payload)
	}
	pbAccept := payload.Accept
	if pbAccept == nil {
		return fmt.Errorf("protobuf codec: accept payload is nil")
	}

	*adata = AcceptData{
		HaveResponse:    pbAccept.HaveResponse,
		ChannelPrefix:   pbAccept.ChannelPrefix,
		HaveInspectData: pbAccept.HaveInspect,
	}

	if pbAccept.HaveInspect && len(pbAccept.Inspect) > 0 {
		adata.InspectData = json.RawMessage(append([]byte(nil), pbAccept.Inspect...))
	}

	for _, pbRR := range pbAccept.Requests {
		if pbRR == nil {
			continue
		}
		rr := ResumptionRecord{
			Rid:             Rid{Sender: pbRR.RidSender, ID: pbRR.RidId},
			HTTPS:           pbRR.Https,
			PeerAddress:     pbRR.PeerAddress,
			AutoCrossOrigin: pbRR.AutoCrossOrigin,
			JsonpCallback:   pbRR.JsonpCallback,
			InSeq:           int(pbRR.InSeq),
			OutSeq:          int(pbRR.OutSeq),
			OutCredits:      int(pbRR.OutCredits),
		}
		if len(pbRR.UserData) > 0 {
			rr.UserData = json.RawMessage(append([]byte(nil), pbRR.UserData...))
		}
		adata.Requests = append(adata.Requests, rr)
	}

	if pbAccept.Request != nil {
		var uri *url.URL
		if pbAccept.Request.Uri != "" {
			u, err := url.Parse(pbAccept.Request.Uri)
			if err != nil {
				return fmt.Errorf("protobuf codec: parse request uri: %w", err)
			}
			uri = u
		}
		adata.RequestData = RequestData{
			Method:  pbAccept.Request.Method,
			URI:     uri,
			Headers: fromProtoHeader(pbAccept.Request.Header),
			Body:    append([]byte(nil), pbAccept.Request.Body...),
		}
	}

	if pbAccept.Response != nil {
		adata.Response = ResponseData{
			Code:    int(pbAccept.Response.Code),
			Reason:  pbAccept.Response.Reason,
			Headers: fromProtoHeader(pbAccept.Response.Header),
			Body:    append([]byte(nil), pbAccept.Response.Body...),
		}
	}

	return nil
}

func toProtoHeader(h http.Header) map[string]*handoffpb.HeaderValues {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]*handoffpb.HeaderValues, len(h))
	for k, vs := range h {
		out[k] = &handoffpb.HeaderValues{
			Values: append([]string(nil), vs...),
		}
	}
	return out
}

func fromProtoHeader(m map[string]*handoffpb.HeaderValues) http.Header {
	if len(m) == 0 {
		return nil
	}
	out := make(http.Header, len(m))
	for k, hv := range m {
		if hv == nil {
			continue
		}
		out[k] = append([]string(nil), hv.Values...)
	}
	return out
}

// toWire 는 AcceptData 를 JSON 직렬화용 표현으로 변환합니다.
func toWire(adata *AcceptData) (*wireAcceptData, error) {
	if adata == nil {
		return nil, fmt.Errorf("json codec: nil accept data")
	}

	wire := &wireAcceptData{
		HaveResponse:  adata.HaveResponse,
		ChannelPrefix: adata.ChannelPrefix,
		HaveInspect:   adata.HaveInspectData,
	}

	if adata.HaveInspectData && adata.InspectData != nil {
		raw, err := json.Marshal(adata.InspectData)
		if err != nil {
			return nil, fmt.Errorf("json codec: marshal inspect data: %w", err)
		}
		wire.Inspect = raw
	}

	for _, rr := range adata.Requests {
		wrr := wireResumptionRecord{
			RidSender:       rr.Rid.Sender,
			RidID:           rr.Rid.ID,
			HTTPS:           rr.HTTPS,
			PeerAddress:     rr.PeerAddress,
			AutoCrossOrigin: rr.AutoCrossOrigin,
			JsonpCallback:   rr.JsonpCallback,
			InSeq:           rr.InSeq,
			OutSeq:          rr.OutSeq,
			OutCredits:      rr.OutCredits,
		}
		if rr.UserData != nil {
			raw, err := json.Marshal(rr.UserData)
			if err != nil {
				return nil, fmt.Errorf("json codec: marshal user data: %w", err)
			}
			wrr.UserData = raw
		}
		wire.Requests = append(wire.Requests, wrr)
	}

	uri := ""
	if adata.RequestData.URI != nil {
		uri = adata.RequestData.URI.String()
	}
	wire.Request = wireRequestData{
		Method: adata.RequestData.Method,
		URI:    uri,
		Header: adata.RequestData.Headers,
		Body:   adata.RequestData.Body,
	}

	wire.Response = wireResponseData{
		Code:   adata.Response.Code,
		Reason: adata.Response.Reason,
		Header: adata.Response.Headers,
		Body:   adata.Response.Body,
	}

	return wire, nil
}

// fromWire 는 JSON 표현을 AcceptData 로 되돌립니다.
func fromWire(wire *wireAcceptData, adata *AcceptData) error {
	*adata = AcceptData{
		HaveResponse:    wire.HaveResponse,
		ChannelPrefix:   wire.ChannelPrefix,
		HaveInspectData: wire.HaveInspect,
	}

	if wire.HaveInspect && len(wire.Inspect) > 0 {
		adata.InspectData = wire.Inspect
	}

	for _, wrr := range wire.Requests {
		rr := ResumptionRecord{
			Rid:             Rid{Sender: wrr.RidSender, ID: wrr.RidID},
			HTTPS:           wrr.HTTPS,
			PeerAddress:     wrr.PeerAddress,
			AutoCrossOrigin: wrr.AutoCrossOrigin,
			JsonpCallback:   wrr.JsonpCallback,
			InSeq:           wrr.InSeq,
			OutSeq:          wrr.OutSeq,
			OutCredits:      wrr.OutCredits,
		}
		if len(wrr.UserData) > 0 {
			rr.UserData = wrr.UserData
		}
		adata.Requests = append(adata.Requests, rr)
	}

	var uri *url.URL
	if wire.Request.URI != "" {
		u, err := url.Parse(wire.Request.URI)
		if err != nil {
			return fmt.Errorf("json codec: parse request uri: %w", err)
		}
		uri = u
	}
	adata.RequestData = RequestData{
		Method:  wire.Request.Method,
		URI:     uri,
		Headers: wire.Request.Header,
		Body:    wire.Request.Body,
	}

	adata.Response = ResponseData{
		Code:    wire.Response.Code,
		Reason:  wire.Response.Reason,
		Headers: wire.Response.Header,
		Body:    wire.Response.Body,
	}

	return nil
}
