package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/mmrzaf/fakesheet/internal/api"
	"github.com/mmrzaf/fakesheet/internal/app"
	"github.com/mmrzaf/fakesheet/internal/config"
	"github.com/mmrzaf/fakesheet/internal/infra/repos/configs"
	"github.com/mmrzaf/fakesheet/internal/logging"
	"github.com/mmrzaf/fakesheet/internal/registry"
)

func main() {
	cfg := config.Load()

	configsDir := flag.String("configs-dir", cfg.ConfigsDir, "Saved configurations directory")
	bindAddr := flag.String("bind", cfg.BindAddr, "Bind address")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	sheetName := flag.String("sheet-name", cfg.SheetName, "Worksheet name")
	maxRows := flag.Int("max-rows", cfg.MaxRows, "Maximum rows per document")
	flag.Parse()

	root := logging.NewLogger(*logLevel)
	defer func() { _ = root.Sync() }()
	logger := root.WithComponent("api_main")

	configRepo := configs.NewFileRepository(*configsDir)
	exportService := app.NewExportService(registry.DefaultRuleRegistry(), root.WithComponent("export"), *sheetName, *maxRows)
	handler := api.NewHandler(configRepo, exportService, root.WithComponent("api"))

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/generate", handler.Generate)
	mux.HandleFunc("POST /api/generate-excel", handler.Generate)
	mux.HandleFunc("GET /api/v1/rules", handler.ListRules)
	mux.HandleFunc("GET /api/v1/configs", handler.ListConfigs)
	mux.HandleFunc("GET /api/v1/configs/{name}", handler.GetConfig)
	mux.HandleFunc("GET /healthz", handler.Health)

	srv := &http.Server{
		Addr:              *bindAddr,
		Handler:           loggingMiddleware(root.WithComponent("http"), mux),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      5 * time.Minute,
	}

	logger.Infow("startup.listening", map[string]any{
		"bind":        *bindAddr,
		"configs_dir": *configsDir,
		"max_rows":    exportService.Validator().MaxRows(),
	})
	if err := srv.ListenAndServe(); err != nil {
		logger.Errorw("startup.failed", map[string]any{"error": err.Error(), "stage": "listen"})
		_ = root.Sync()
		os.Exit(1)
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		fields := map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"bytes":       sw.bytes,
			"duration_ms": time.Since(started).Milliseconds(),
			"remote":      r.RemoteAddr,
		}
		if sw.status >= 500 {
			logger.Errorw("request.completed", fields)
			return
		}
		if sw.status >= 400 {
			logger.Warnw("request.completed", fields)
			return
		}
		logger.Infow("request.completed", fields)
	})
}
