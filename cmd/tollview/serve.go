// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/tollview/internal/config"
	"github.com/davetashner/tollview/internal/output"
	"github.com/davetashner/tollview/internal/report"
	"github.com/davetashner/tollview/internal/testable"
)

// Serve-specific flag values.
var (
	serveListen     string
	serveDataDir    string
	serveFiguresDir string
)

const shutdownTimeout = 5 * time.Second

// serveCmd is the interactive display session: every page load is a fresh
// render pass over the current artifacts.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the review over HTTP",
	Long: `Serve the congestion pricing review as an HTML page. Each request runs a
new render pass, so regenerated pipeline artifacts show up on reload.

Endpoints:
  GET /             HTML report (503 when the summary data is unavailable)
  GET /report.json  the same report as JSON
  GET /healthz      liveness and input availability`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default :8501)")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "directory holding the summary table")
	serveCmd.Flags().StringVar(&serveFiguresDir, "figures-dir", "", "directory holding the chart images")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{
		Listen:     serveListen,
		DataDir:    serveDataDir,
		FiguresDir: serveFiguresDir,
	})
	if err != nil {
		return err
	}
	renderer, err := report.NewRenderer(cfg.Sections)
	if err != nil {
		return exitError(ExitInvalidArgs, "tollview: %v", err)
	}

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return exitError(ExitInvalidArgs, "tollview: cannot listen on %q (%v)", cfg.Listen, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Handler:           newServeMux(renderer, cfg, cmdFS),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("serving report", "addr", ln.Addr().String(), "sections", renderer.Sections())
	return serveUntilDone(ctx, srv, ln)
}

// serveUntilDone runs srv on ln until ctx is cancelled, then shuts it down
// gracefully.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// reportServer renders the report for HTTP requests.
type reportServer struct {
	renderer *report.Renderer
	cfg      config.Config
	fs       testable.FileSystem
}

// newServeMux returns the HTTP handler of the serve command.
func newServeMux(renderer *report.Renderer, cfg config.Config, fsys testable.FileSystem) http.Handler {
	s := &reportServer{renderer: renderer, cfg: cfg, fs: fsys}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", securityHeaders(s.handleFormat("html")))
	mux.HandleFunc("GET /report.json", securityHeaders(s.handleFormat("json")))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// handleFormat runs one render pass and writes it with the named formatter.
// An aborted pass is still written, with status 503.
func (s *reportServer) handleFormat(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formatter, err := output.GetFormatter(format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		doc, err := s.renderer.Render(r.Context(), s.cfg.RenderContext(s.fs))
		if err != nil {
			slog.Warn("render failed", "path", r.URL.Path, "error", err)
			http.Error(w, "render cancelled", http.StatusServiceUnavailable)
			return
		}

		var buf bytes.Buffer
		if err := formatter.Format(doc, &buf); err != nil {
			slog.Error("format failed", "format", format, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", formatter.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		status := http.StatusOK
		if doc.Aborted {
			status = http.StatusServiceUnavailable
		}
		w.WriteHeader(status)
		_, _ = w.Write(buf.Bytes())
	}
}

// healthStatus is the body of /healthz.
type healthStatus struct {
	Status      string `json:"status"`
	SummaryPath string `json:"summary_path"`
	SummaryOK   bool   `json:"summary_present"`
}

func (s *reportServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	rc := s.cfg.RenderContext(s.fs)
	fsys := s.fs
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	_, statErr := fsys.Stat(rc.SummaryPath)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthStatus{
		Status:      "ok",
		SummaryPath: rc.SummaryPath,
		SummaryOK:   statErr == nil,
	})
}

// securityHeaders adds the response headers every report page carries.
// Figures are inlined as data URIs and styles are inline, so nothing is
// loaded from elsewhere.
func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy",
			"default-src 'none'; img-src data:; style-src 'unsafe-inline'")
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next(w, r)
	}
}
