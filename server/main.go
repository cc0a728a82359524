//go:build !js
// +build !js

// Command server serves the browser build for local play: the embedded
// page at / and the GopherJS bundle from a static directory.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/internal/hostlog"
)

//go:embed index.html
var indexHTML []byte

func main() {
	port := flag.Int("port", common.GetEnvInt("ARENA_PORT", 8080), "HTTP server port")
	host := flag.String("host", common.GetEnv("ARENA_HOST", ""), "Interface to listen on")
	staticDir := flag.String("static", common.GetEnv("ARENA_STATIC", "."), "Directory to serve static files from")
	level := flag.String("log-level", common.GetEnv("ARENA_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	flag.Parse()

	logger, closer, err := hostlog.Open(hostlog.Options{Prefix: "server", Level: *level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	addr := fmt.Sprintf("%s:%d", *host, *port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           withRequestLog(logger, newMux(*staticDir)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("server starting", "url", "http://localhost"+fmt.Sprintf(":%d", *port))
	logger.Info("serving static files", "dir", *staticDir)

	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func newMux(staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		// Serve other static files from disk
		files.ServeHTTP(w, r)
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})
	return mux
}

// statusRecorder captures the response code for request logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withRequestLog(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}
