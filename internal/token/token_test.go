package token

import (
	"strings"
	"testing"
)

func TestEncodeValidateRoundTrip(t *testing.T) {
	key := []byte("test-secret-key")

	raw, err := Encode("gateway", key)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if raw == "" {
		t.Fatal("empty token")
	}
	if !Validate(raw, key) {
		t.Error("freshly minted token failed validation")
	}
}

func TestValidateWrongKey(t *testing.T) {
	raw, err := Encode("gateway", []byte("key-one"))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if Validate(raw, []byte("key-two")) {
		t.Error("token validated under the wrong key")
	}
}

func TestValidateGarbage(t *testing.T) {
	key := []byte("test-secret-key")

	for _, raw := range []string{
		"",
		"not-a-token",
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9..",
		strings.Repeat("x", 4096),
	} {
		if Validate(raw, key) {
			t.Errorf("garbage token %q validated", raw)
		}
	}
}

func TestValidateTamperedToken(t *testing.T) {
	key := []byte("test-secret-key")

	raw, err := Encode("gateway", key)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	// 페이로드 한 바이트를 건드리면 서명 검증이 실패해야 합니다.
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	payload := []byte(parts[1])
	payload[0] ^= 0x01
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if Validate(tampered, key) {
		t.Error("tampered token validated")
	}
}
