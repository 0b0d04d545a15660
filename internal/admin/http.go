package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalbodeule/grip-gate/internal/logging"
)

// Handler 는 /api/v1/admin 관리 plane HTTP 엔드포인트를 제공합니다.
type Handler struct {
	Logger     logging.Logger
	AdminToken string
	Service    RouteService
}

// NewHandler 는 새로운 Handler 를 생성합니다.
func NewHandler(logger logging.Logger, adminToken string, svc RouteService) *Handler {
	return &Handler{
		Logger:     logger.With(logging.Fields{"component": "admin_api"}),
		AdminToken: strings.TrimSpace(adminToken),
		Service:    svc,
	}
}

// RegisterRoutes 는 전달받은 mux 에 관리 API 라우트를 등록합니다.
//   - POST /api/v1/admin/routes/register
//   - POST /api/v1/admin/routes/unregister
//   - GET  /api/v1/admin/routes/get
//   - GET  /api/v1/admin/routes/list
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/v1/admin/routes/register", h.authMiddleware(http.HandlerFunc(h.handleRouteRegister)))
	mux.Handle("/api/v1/admin/routes/unregister", h.authMiddleware(http.HandlerFunc(h.handleRouteUnregister)))
	mux.Handle("/api/v1/admin/routes/get", h.authMiddleware(http.HandlerFunc(h.handleRouteGet)))
	mux.Handle("/api/v1/admin/routes/list", h.authMiddleware(http.HandlerFunc(h.handleRouteList)))
}

// authMiddleware 는 Authorization: Bearer {ADMIN_TOKEN} 헤더를 검증합니다.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticate(r) {
			h.writeJSON(w, http.StatusUnauthorized, apiResponse{
				Success: false,
				Error:   "unauthorized",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) authenticate(r *http.Request) bool {
	if h.AdminToken == "" {
		// Admin 토큰이 설정되지 않았다면 모든 요청을 거부
		return false
	}
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return false
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, prefix))
	return token == h.AdminToken
}

type apiResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	SigKey  string `json:"sig_key,omitempty"`
	Route   any    `json:"route,omitempty"`
	Routes  any    `json:"routes,omitempty"`
}

type routeRegisterRequest struct {
	Domain        string `json:"domain"`
	Targets       string `json:"targets"`
	ChannelPrefix string `json:"channel_prefix"`
	SigIss        string `json:"sig_iss"`
	SigKey        string `json:"sig_key"`
	Memo          string `json:"memo"`
}

// routeView 는 API 응답용 라우트 표현입니다. 서명 키는 마스킹합니다.
type routeView struct {
	Domain        string    `json:"domain"`
	Targets       string    `json:"targets"`
	ChannelPrefix string    `json:"channel_prefix,omitempty"`
	SigIss        string    `json:"sig_iss,omitempty"`
	SigKeyMasked  string    `json:"sig_key_masked,omitempty"`
	Memo          string    `json:"memo,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (h *Handler) handleRouteRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeMethodNotAllowed(w)
		return
	}

	var req routeRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warn("invalid register request body", logging.Fields{"error": err.Error()})
		h.writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	sigKey, err := h.Service.RegisterRoute(r.Context(), RegisterRouteInput{
		Domain:        strings.TrimSpace(req.Domain),
		Targets:       req.Targets,
		ChannelPrefix: req.ChannelPrefix,
		SigIss:        req.SigIss,
		SigKey:        req.SigKey,
		Memo:          req.Memo,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		SigKey:  sigKey,
	})
}

type routeUnregisterRequest struct {
	Domain string `json:"domain"`
}

func (h *Handler) handleRouteUnregister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeMethodNotAllowed(w)
		return
	}

	var req routeUnregisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	if err := h.Service.UnregisterRoute(r.Context(), req.Domain); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

func (h *Handler) handleRouteGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeMethodNotAllowed(w)
		return
	}

	domain := strings.TrimSpace(r.URL.Query().Get("domain"))
	row, err := h.Service.GetRoute(r.Context(), domain)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Route: routeView{
			Domain:        row.Domain,
			Targets:       row.Targets,
			ChannelPrefix: row.ChannelPrefix,
			SigIss:        row.SigIss,
			SigKeyMasked:  maskKey(row.SigKey),
			Memo:          row.Memo,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		},
	})
}

func (h *Handler) handleRouteList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeMethodNotAllowed(w)
		return
	}

	rows, err := h.Service.ListRoutes(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	views := make([]routeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, routeView{
			Domain:        row.Domain,
			Targets:       row.Targets,
			ChannelPrefix: row.ChannelPrefix,
			SigIss:        row.SigIss,
			SigKeyMasked:  maskKey(row.SigKey),
			Memo:          row.Memo,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}

	h.writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Routes:  views,
	})
}

// writeServiceError 는 서비스 에러를 적절한 상태 코드로 변환해 응답합니다.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDomain), errors.Is(err, ErrInvalidTargets):
		h.writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: err.Error()})
	case errors.Is(err, ErrRouteNotFound):
		h.writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Error: err.Error()})
	case errors.Is(err, ErrRouteExists):
		h.writeJSON(w, http.StatusConflict, apiResponse{Success: false, Error: err.Error()})
	default:
		h.Logger.Error("admin api internal error", logging.Fields{"error": err.Error()})
		h.writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "internal error"})
	}
}

func (h *Handler) writeMethodNotAllowed(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusMethodNotAllowed, apiResponse{
		Success: false,
		Error:   "method not allowed",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
