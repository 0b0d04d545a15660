package domainmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dalbodeule/grip-gate/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewStdJSONLoggerAt("test", logging.ErrorLevel)
}

func writeRoutesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileAndLookup(t *testing.T) {
	m := NewStaticMap(testLogger())

	path := writeRoutesFile(t, `
# comment line
example.com prefix=chat-,sig_iss=gate,sig_key=secret 127.0.0.1:8080 10.0.0.2:8443,ssl,insecure
api.example.com 127.0.0.1:9000,trusted

* 127.0.0.1:3000
`)

	if err := m.LoadFile(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	e := m.Entry("example.com", "/x", false)
	if e.IsNull() {
		t.Fatal("entry for example.com is null")
	}
	if e.Prefix != "chat-" || e.SigIss != "gate" || e.SigKey != "secret" {
		t.Errorf("options = %+v", e)
	}
	if len(e.Targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(e.Targets))
	}
	if e.Targets[0].Host != "127.0.0.1" || e.Targets[0].Port != 8080 || e.Targets[0].SSL {
		t.Errorf("first target = %+v", e.Targets[0])
	}
	if !e.Targets[1].SSL || !e.Targets[1].Insecure || e.Targets[1].Trusted {
		t.Errorf("second target flags = %+v", e.Targets[1])
	}

	trusted := m.Entry("api.example.com", "/", false)
	if len(trusted.Targets) != 1 || !trusted.Targets[0].Trusted {
		t.Errorf("api target = %+v", trusted.Targets)
	}

	// 등록되지 않은 호스트는 "*" 로 폴백합니다.
	fallback := m.Entry("other.example.com", "/", false)
	if fallback.IsNull() || fallback.Targets[0].Port != 3000 {
		t.Errorf("fallback = %+v", fallback)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	m := NewStaticMap(testLogger())
	m.Set("Example.COM", Entry{Targets: []Target{{Host: "h", Port: 1}}})

	if m.Entry("EXAMPLE.com", "/", false).IsNull() {
		t.Error("host lookup should be case-insensitive")
	}
}

func TestLoadFileRejectsBadLines(t *testing.T) {
	m := NewStaticMap(testLogger())

	for _, content := range []string{
		"example.com",                      // 타겟 없음
		"example.com 127.0.0.1",            // 포트 없음
		"example.com 127.0.0.1:0",          // 포트 범위 밖
		"example.com 127.0.0.1:80,wat",     // 알 수 없는 플래그
		"example.com bogus=1 127.0.0.1:80", // 알 수 없는 옵션
		"example.com 127.0.0.1:notanumber", // 숫자 아님
	} {
		path := writeRoutesFile(t, content)
		if err := m.LoadFile(path); err == nil {
			t.Errorf("line %q was accepted", content)
		}
	}
}

func TestParseTarget(t *testing.T) {
	tgt, err := ParseTarget("origin.internal:8443,ssl,trusted")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tgt.Host != "origin.internal" || tgt.Port != 8443 || !tgt.SSL || !tgt.Trusted || tgt.Insecure {
		t.Errorf("target = %+v", tgt)
	}
}
