package proxy

import "strings"

// XffRule 은 X-Forwarded-For 체인에 적용할 truncate+append 규칙입니다.
// Truncate 가 -1 이면 잘라내지 않고, 0 이상이면 마지막 Truncate 개만 유지합니다.
type XffRule struct {
	Truncate int
	Append   bool
}

// Apply 는 기존 체인 엔트리 목록에 규칙을 적용한 새 목록을 반환합니다.
// Apply returns the chain entries after truncation and optional peer append.
func (r XffRule) Apply(values []string, peerAddress string) []string {
	out := values
	if r.Truncate >= 0 {
		drop := len(out) - r.Truncate
		if drop < 0 {
			drop = 0
		}
		out = out[drop:]
	}
	if r.Append {
		out = append(append([]string(nil), out...), peerAddress)
	}
	return out
}

// splitChain 은 헤더 값 목록을 개별 주소 엔트리로 분해합니다.
// 한 헤더 라인에 "a, b" 처럼 여러 주소가 올 수 있습니다.
func splitChain(headerValues []string) []string {
	var out []string
	for _, v := range headerValues {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// joinChain 은 엔트리 목록을 단일 헤더 값으로 합칩니다.
func joinChain(entries []string) string {
	return strings.Join(entries, ", ")
}
