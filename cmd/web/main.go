package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/emacsteroids/internal/config"
	"github.com/tomz197/emacsteroids/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHost      = "0.0.0.0"
	defaultPort      = "8080"
	defaultStaticDir = "web"
)

//go:embed index.html
var htmlPage string

//go:embed play.html
var playPage string

func main() {
	logger := logging.New(os.Stderr, "web")
	if err := run(logger); err != nil {
		logger.Fatal("Web server failed", "err", err)
	}
}

func run(logger *log.Logger) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	staticDir := config.GetEnv("WEB_STATIC_DIR", defaultStaticDir)

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newHandler(sshHost, staticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting web server", "addr", "http://"+srv.Addr, "static", staticDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHandler serves the landing page at / and the WebAssembly build under /play/.
func newHandler(sshHost, staticDir string) http.Handler {
	landing := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, landing)
	})
	mux.HandleFunc("GET /play/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, playPage)
	})
	mux.Handle("GET /play/", http.StripPrefix("/play/", http.FileServer(http.Dir(staticDir))))
	return mux
}
