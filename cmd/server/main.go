package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dalbodeule/grip-gate/internal/acme"
	"github.com/dalbodeule/grip-gate/internal/admin"
	"github.com/dalbodeule/grip-gate/internal/config"
	"github.com/dalbodeule/grip-gate/internal/domainmap"
	"github.com/dalbodeule/grip-gate/internal/handoff"
	"github.com/dalbodeule/grip-gate/internal/logging"
	"github.com/dalbodeule/grip-gate/internal/observability"
	"github.com/dalbodeule/grip-gate/internal/server"
	"github.com/dalbodeule/grip-gate/internal/store"
)

func main() {
	// 1. 서버 설정 로드 (.env + 환경변수)
	cfg, err := config.LoadServerConfigFromEnv()
	if err != nil {
		logging.NewStdJSONLogger("server").Error("failed to load server config from env", logging.Fields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	logger := logging.NewStdJSONLoggerAt("server", logging.ParseLevel(cfg.Logging.Level))

	logger.Info("grip-gate server starting", logging.Fields{
		"stack":        "prometheus-loki-grafana",
		"http_listen":  cfg.HTTPListen,
		"admin_listen": cfg.AdminListen,
		"routes_file":  cfg.RoutesFile,
		"handoff_addr": cfg.HandoffAddr,
		"debug":        cfg.Debug,
	})

	observability.MustRegister()

	ctx := context.Background()

	// 2. 라우트 소스 구성
	//
	// GRIP_DB_DSN 이 설정되어 있으면 PostgreSQL(RouteStore) 를 사용하고,
	// 아니면 routes 파일(StaticMap) 을 사용합니다.
	var domains domainmap.DomainMap
	var routeStore *store.RouteStore

	if os.Getenv("GRIP_DB_DSN") != "" {
		dbCfg, err := store.ConfigFromEnv()
		if err != nil {
			logger.Error("invalid db config", logging.Fields{"error": err.Error()})
			os.Exit(1)
		}
		client, err := store.OpenPostgres(ctx, logger, dbCfg)
		if err != nil {
			logger.Error("failed to open postgres", logging.Fields{"error": err.Error()})
			os.Exit(1)
		}
		defer client.Close()

		routeStore = store.NewRouteStore(logger, client, dbCfg.CacheTTL)
		domains = routeStore

		// 3. admin API 는 DB 라우트 소스일 때만 의미가 있습니다.
		if cfg.AdminToken != "" {
			adminMux := http.NewServeMux()
			adminMux.Handle("/metrics", promhttp.Handler())

			svc := admin.NewRouteService(logger, client, routeStore.Invalidate)
			admin.NewHandler(logger, cfg.AdminToken, svc).RegisterRoutes(adminMux)

			go serveAdmin(logger, cfg.AdminListen, adminMux)
		} else {
			go serveMetricsOnly(logger, cfg.AdminListen)
		}
	} else {
		static := domainmap.NewStaticMap(logger)
		if cfg.RoutesFile == "" {
			logger.Error("no route source: set GRIP_ROUTES_FILE or GRIP_DB_DSN", nil)
			os.Exit(1)
		}
		if err := static.LoadFile(cfg.RoutesFile); err != nil {
			logger.Error("failed to load routes file", logging.Fields{"error": err.Error()})
			os.Exit(1)
		}
		domains = static

		go serveMetricsOnly(logger, cfg.AdminListen)
	}

	// 4. handoff 서브시스템 연결 (선택)
	var submitter server.Submitter
	if cfg.HandoffAddr != "" {
		grpcSubmitter := handoff.NewGRPCSubmitter(logger, cfg.HandoffAddr)
		defer grpcSubmitter.Close()
		submitter = grpcSubmitter
	} else {
		logger.Warn("no handoff subsystem configured; grip-instruct responses will be refused", nil)
	}

	// 5. front HTTP(S) 서버 시작
	front := server.NewFront(cfg, logger, domains, submitter)
	srv := server.NewHTTPServer(cfg.HTTPListen, front)

	go func() {
		logger.Info("http server listening", logging.Fields{"addr": cfg.HTTPListen})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", logging.Fields{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// HTTPS 는 인증서 파일이 주어졌을 때만 켭니다. 인증서 수급(ACME 등)은
	// acme.Manager 경계 밖의 일이며, 여기서는 파일 기반 구현만 사용합니다.
	var httpsSrv *http.Server
	certFile := os.Getenv("GRIP_TLS_CERT_FILE")
	keyFile := os.Getenv("GRIP_TLS_KEY_FILE")
	if certFile != "" && keyFile != "" {
		certs, err := acme.NewFileManager(certFile, keyFile)
		if err != nil {
			logger.Error("failed to load tls certificate", logging.Fields{"error": err.Error()})
			os.Exit(1)
		}

		httpsSrv = server.NewHTTPServer(cfg.HTTPSListen, front)
		httpsSrv.TLSConfig = certs.TLSConfig()

		go func() {
			logger.Info("https server listening", logging.Fields{"addr": cfg.HTTPSListen})
			if err := httpsSrv.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
				logger.Error("https server failed", logging.Fields{"error": err.Error()})
				os.Exit(1)
			}
		}()
	}

	// 6. 종료 시그널 처리
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("shutting down", logging.Fields{"signal": sig.String()})

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown incomplete", logging.Fields{"error": err.Error()})
	}
	if httpsSrv != nil {
		if err := httpsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("https graceful shutdown incomplete", logging.Fields{"error": err.Error()})
		}
	}
}

func serveAdmin(logger logging.Logger, addr string, mux *http.ServeMux) {
	logger.Info("admin server listening", logging.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("admin server failed", logging.Fields{"error": err.Error()})
	}
}

func serveMetricsOnly(logger logging.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics server listening", logging.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server failed", logging.Fields{"error": err.Error()})
	}
}
