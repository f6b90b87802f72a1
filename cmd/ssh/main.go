package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/emacsteroids/internal/config"
	internallog "github.com/tomz197/emacsteroids/internal/logging"
	"github.com/tomz197/emacsteroids/internal/loop"
	"github.com/tomz197/emacsteroids/internal/session"
	"github.com/tomz197/emacsteroids/internal/share"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

// server holds what every SSH session shares.
type server struct {
	registry *session.Registry
	tuning   config.Tuning
	link     share.Link
	logger   *log.Logger
}

func main() {
	logger := internallog.New(os.Stderr, "ssh")
	if err := run(logger); err != nil {
		logger.Fatal("SSH server failed", "err", err)
	}
}

func run(logger *log.Logger) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	tuning, err := config.LoadTuning(config.GetEnv("GAME_TUNING", ""))
	if err != nil {
		return err
	}

	srv := &server{
		registry: session.NewRegistry(config.TopScoresShown),
		tuning:   tuning,
		link: share.Link{
			Base:    config.GetEnv("SHARE_BASE_URL", config.DefaultShareBaseURL),
			Text:    config.DefaultShareText,
			PageURL: config.GetEnv("PLAY_URL", config.DefaultPlayURL),
		},
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting SSH server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server, notifying connected players...")
		if remaining := srv.registry.Shutdown(config.GetEnvDuration("SHUTDOWN_WAIT", config.ShutdownWait)); remaining > 0 {
			logger.Warn("Closing sessions that did not disconnect", "count", remaining)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// gameMiddleware runs one game per SSH session.
func (srv *server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := srv.logger.With("user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		client, err := loop.NewClient(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Renderer:     newRenderer(sess, pty.Term, sess.Environ()),
			Logger:       logger,
			Term:         pty.Term,
			Username:     sess.User(),
			Tuning:       srv.tuning,
			Link:         srv.link,
			Registry:     srv.registry,
		})
		if errors.Is(err, session.ErrShuttingDown) {
			fmt.Fprintln(sess, "The server is shutting down, please reconnect in a moment.")
			return
		}
		if err != nil {
			logger.Error("Cannot start game", "err", err)
			return
		}

		if err := client.Run(sess.Context()); err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended", "players", srv.registry.Count())
		next(sess)
	}
}
