package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 전역 레지스트리에 등록할 GripGate 메트릭들을 정의합니다.
// Prometheus 기본 네임스페이스를 사용하며, 메트릭 이름에 gripgate_ 접두어를 붙입니다.

var (
	// 생성된 프록시 세션 수.
	SessionsStartedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gripgate_sessions_started_total",
			Help: "Total number of proxy sessions created.",
		},
	)

	// 종료된 프록시 세션 수 (passthrough/accept 라벨 포함).
	SessionsFinishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gripgate_sessions_finished_total",
			Help: "Total number of proxy sessions finished, labeled by terminal outcome.",
		},
		[]string{"outcome"}, // passthrough, accept
	)

	// origin 타겟 연결 시도 수. 재시도 시 타겟마다 1씩 증가합니다.
	TargetAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gripgate_target_attempts_total",
			Help: "Total number of upstream target attempts, including retries.",
		},
	)

	// 클라이언트로 내려간 프록시 오류 응답 수 (상태 코드 라벨 포함).
	ProxyErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gripgate_proxy_errors_total",
			Help: "Total number of error responses synthesized by the gateway, labeled by status code.",
		},
		[]string{"status"},
	)

	// upstream 에서 수신한 응답 본문 바이트 수.
	UpstreamBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gripgate_upstream_bytes_total",
			Help: "Total number of response body bytes received from origin servers.",
		},
	)

	// HTTP 엔드포인트를 통해 들어온 요청 수 (메서드/상태 코드 라벨 포함).
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gripgate_http_requests_total",
			Help: "Total number of HTTP requests handled by the proxy entrypoint, labeled by method and status code.",
		},
		[]string{"method", "status"},
	)
)

// MustRegister 는 위에서 정의한 메트릭들을 전역 Prometheus 레지스트리에 등록합니다.
// 서버 시작 시 한 번만 호출해야 합니다.
func MustRegister() {
	prometheus.MustRegister(
		SessionsStartedTotal,
		SessionsFinishedTotal,
		TargetAttemptsTotal,
		ProxyErrorsTotal,
		UpstreamBytesTotal,
		HTTPRequestsTotal,
	)
}
