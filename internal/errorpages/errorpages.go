package errorpages

import (
	"embed"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StatusCannotAccept is the HTTP-style status code used when a push handoff
// cannot be carried out and the request falls back to an error response.
// push handoff 를 수행할 수 없어 오류로 응답할 때 사용하는 상태 코드입니다.
const StatusCannotAccept = http.StatusServiceUnavailable

// StatusLengthRequired mirrors the origin-side demand for a Content-Length
// header on streamed request bodies.
const StatusLengthRequired = http.StatusLengthRequired

//go:embed templates/*.html
var embeddedTemplatesFS embed.FS

// Render writes an error page HTML for the given HTTP status code to the response writer.
// If no matching template is found, it falls back to a minimal plain text response.
//
// 주어진 HTTP 상태 코드에 대한 에러 페이지 HTML을 응답에 씁니다.
// 해당 템플릿이 없으면 최소한의 텍스트 응답으로 폴백합니다.
func Render(w http.ResponseWriter, r *http.Request, status int) {
	html, ok := Load(status)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if !ok {
		// Fallback to a minimal plain text response if no template is available.
		_, _ = fmt.Fprintf(w, "%d %s", status, http.StatusText(status))
		return
	}

	_, _ = w.Write(html)
}

// Load attempts to load an error page for the given HTTP status code.
//
// Priority:
//  1. $GRIP_ERROR_PAGES_DIR/<status>.html (or ./errors/<status>.html if env is empty)
//  2. embedded template: templates/<status>.html
//
// 주어진 HTTP 상태 코드에 대한 에러 페이지를 로드합니다.
//
// 우선순위:
//  1. $GRIP_ERROR_PAGES_DIR/<status>.html (env 미설정 시 ./errors/<status>.html)
//  2. 내장 템플릿: templates/<status>.html
func Load(status int) ([]byte, bool) {
	name := fmt.Sprintf("%d.html", status)

	// 1. External directory override (GRIP_ERROR_PAGES_DIR, default "./errors").
	dir := strings.TrimSpace(os.Getenv("GRIP_ERROR_PAGES_DIR"))
	if dir == "" {
		dir = "./errors"
	}
	p := filepath.Join(dir, name)
	if data, err := os.ReadFile(p); err == nil {
		return data, true
	}

	// 2. Embedded default templates.
	p = filepath.Join("templates", name)
	if data, err := embeddedTemplatesFS.ReadFile(p); err == nil {
		return data, true
	}

	return nil, false
}
