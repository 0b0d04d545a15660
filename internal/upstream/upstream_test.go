package upstream

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"

	"github.com/dalbodeule/grip-gate/internal/proxy"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyDialErrors(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	if got := classify(refused); got != proxy.ErrorConnect {
		t.Errorf("dial refused = %v, want ErrorConnect", got)
	}

	dialTimeout := &net.OpError{Op: "dial", Net: "tcp", Err: timeoutErr{}}
	if got := classify(dialTimeout); got != proxy.ErrorConnectTimeout {
		t.Errorf("dial timeout = %v, want ErrorConnectTimeout", got)
	}

	dns := &net.DNSError{Err: "no such host", Name: "origin.invalid"}
	if got := classify(dns); got != proxy.ErrorConnect {
		t.Errorf("dns error = %v, want ErrorConnect", got)
	}
}

func TestClassifyTLSErrors(t *testing.T) {
	certErr := &tls.CertificateVerificationError{Err: x509.UnknownAuthorityError{}}
	if got := classify(fmt.Errorf("wrapped: %w", certErr)); got != proxy.ErrorTLS {
		t.Errorf("cert verification = %v, want ErrorTLS", got)
	}

	recErr := tls.RecordHeaderError{Msg: "first record does not look like a TLS handshake"}
	if got := classify(recErr); got != proxy.ErrorTLS {
		t.Errorf("record header = %v, want ErrorTLS", got)
	}
}

func TestClassifyGenericError(t *testing.T) {
	if got := classify(errors.New("stream reset")); got != proxy.ErrorGeneric {
		t.Errorf("generic = %v, want ErrorGeneric", got)
	}
}

func TestReasonOf(t *testing.T) {
	resp := &http.Response{StatusCode: 200, Status: "200 OK"}
	if got := reasonOf(resp); got != "OK" {
		t.Errorf("reason = %q, want OK", got)
	}

	resp = &http.Response{StatusCode: 502, Status: ""}
	if got := reasonOf(resp); got != "Bad Gateway" {
		t.Errorf("reason = %q, want Bad Gateway", got)
	}
}

func TestRequestReadBodyDrainsPending(t *testing.T) {
	r := &Request{}
	r.pending = []byte("abcdef")
	r.cond = sync.NewCond(&r.mu)

	if got := string(r.ReadBody(4)); got != "abcd" {
		t.Errorf("first read = %q", got)
	}
	if got := string(r.ReadBody(10)); got != "ef" {
		t.Errorf("second read = %q", got)
	}
	if got := r.ReadBody(10); got != nil {
		t.Errorf("empty read = %v", got)
	}
}

func TestRequestIsFinished(t *testing.T) {
	r := &Request{}
	r.cond = sync.NewCond(&r.mu)

	if r.IsFinished() {
		t.Error("fresh request reports finished")
	}

	r.pending = []byte("x")
	r.bodyDone = true
	if r.IsFinished() {
		t.Error("finished with pending bytes")
	}

	_ = r.ReadBody(1)
	if !r.IsFinished() {
		t.Error("not finished after body done and drained")
	}
}
