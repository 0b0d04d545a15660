package handoff

import (
	"bufio"
	"bytes"
	"net/http"
	"net/url"
	"testing"
)

func sampleAcceptData(t *testing.T) *AcceptData {
	t.Helper()

	uri, err := url.Parse("https://example.com/sub?x=1")
	if err != nil {
		t.Fatal(err)
	}

	return &AcceptData{
		Requests: []ResumptionRecord{
			{
				Rid:         Rid{Sender: "grip-gate", ID: "req-1"},
				HTTPS:       true,
				PeerAddress: "10.0.0.1",
				InSeq:       3,
				OutSeq:      7,
				OutCredits:  100000,
			},
			{
				Rid:           Rid{Sender: "grip-gate", ID: "req-2"},
				JsonpCallback: "cb",
				OutCredits:    200000,
			},
		},
		RequestData: RequestData{
			Method: "GET",
			URI:    uri,
			Headers: http.Header{
				"Grip-Sig": {"token"},
				"Accept":   {"text/plain", "application/json"},
			},
			Body: []byte("request body"),
		},
		HaveResponse: true,
		Response: ResponseData{
			Code:   200,
			Reason: "OK",
			Headers: http.Header{
				"Content-Type": {"application/grip-instruct"},
			},
			Body: []byte(`{"hold":{"mode":"stream"}}`),
		},
		ChannelPrefix: "chan-",
	}
}

func assertRoundTrip(t *testing.T, in, out *AcceptData) {
	t.Helper()

	if len(out.Requests) != len(in.Requests) {
		t.Fatalf("requests = %d, want %d", len(out.Requests), len(in.Requests))
	}
	for i := range in.Requests {
		if out.Requests[i].Rid != in.Requests[i].Rid {
			t.Errorf("request %d rid = %+v", i, out.Requests[i].Rid)
		}
		if out.Requests[i].InSeq != in.Requests[i].InSeq ||
			out.Requests[i].OutSeq != in.Requests[i].OutSeq ||
			out.Requests[i].OutCredits != in.Requests[i].OutCredits {
			t.Errorf("request %d seqs = %+v", i, out.Requests[i])
		}
	}

	if out.RequestData.Method != in.RequestData.Method {
		t.Errorf("method = %q", out.RequestData.Method)
	}
	if out.RequestData.URI.String() != in.RequestData.URI.String() {
		t.Errorf("uri = %q", out.RequestData.URI.String())
	}
	if !bytes.Equal(out.RequestData.Body, in.RequestData.Body) {
		t.Errorf("request body = %q", out.RequestData.Body)
	}
	if got := out.RequestData.Headers["Accept"]; len(got) != 2 {
		t.Errorf("Accept header values = %v", got)
	}

	if out.HaveResponse != in.HaveResponse {
		t.Error("haveResponse lost")
	}
	if out.Response.Code != in.Response.Code || out.Response.Reason != in.Response.Reason {
		t.Errorf("response status = %d %q", out.Response.Code, out.Response.Reason)
	}
	if !bytes.Equal(out.Response.Body, in.Response.Body) {
		t.Errorf("response body = %q", out.Response.Body)
	}
	if out.ChannelPrefix != in.ChannelPrefix {
		t.Errorf("channel prefix = %q", out.ChannelPrefix)
	}
}

func TestJSONCodecRoundTrip(t *testing.T) {
	in := sampleAcceptData(t)

	var buf bytes.Buffer
	if err := JSONCodec.Encode(&buf, in); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var out AcceptData
	if err := JSONCodec.Decode(bufio.NewReader(&buf), &out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	assertRoundTrip(t, in, &out)
}

func TestProtobufCodecRoundTrip(t *testing.T) {
	in := sampleAcceptData(t)

	var buf bytes.Buffer
	if err := DefaultCodec.Encode(&buf, in); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	// 프레임 구조 확인: [4바이트 길이][protobuf bytes]
	frame := buf.Bytes()
	if len(frame) < 4 {
		t.Fatalf("frame too short: %d bytes", len(frame))
	}

	var out AcceptData
	if err := DefaultCodec.Decode(bytes.NewReader(frame), &out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	assertRoundTrip(t, in, &out)
}

func TestProtobufCodecMultipleEnvelopes(t *testing.T) {
	var buf bytes.Buffer

	first := sampleAcceptData(t)
	second := sampleAcceptData(t)
	second.ChannelPrefix = "other-"

	if err := DefaultCodec.Encode(&buf, first); err != nil {
		t.Fatalf("encode first: %v", err)
	}
	if err := DefaultCodec.Encode(&buf, second); err != nil {
		t.Fatalf("encode second: %v", err)
	}

	r := bytes.NewReader(buf.Bytes())

	var out1, out2 AcceptData
	if err := DefaultCodec.Decode(r, &out1); err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if err := DefaultCodec.Decode(r, &out2); err != nil {
		t.Fatalf("decode second: %v", err)
	}

	if out1.ChannelPrefix != "chan-" || out2.ChannelPrefix != "other-" {
		t.Errorf("prefixes = %q, %q", out1.ChannelPrefix, out2.ChannelPrefix)
	}
}

func TestProtobufCodecRejectsTruncatedFrame(t *testing.T) {
	in := sampleAcceptData(t)

	var buf bytes.Buffer
	if err := DefaultCodec.Encode(&buf, in); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	frame := buf.Bytes()
	var out AcceptData
	if err := DefaultCodec.Decode(bytes.NewReader(frame[:len(frame)-3]), &out); err == nil {
		t.Error("truncated frame decoded")
	}
}
