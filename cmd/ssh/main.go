package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/gallery/internal/asset"
	"github.com/tomz197/gallery/internal/config"
	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/loop"
	"github.com/tomz197/gallery/internal/metrics"
)

// server holds what every session shares: configuration, decoded images
// and metrics. Each session still plays its own round.
type server struct {
	cfg      config.Config
	logger   *log.Logger
	images   *asset.Store
	recorder *metrics.Recorder
	root     context.Context
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger(os.Stderr, cfg)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config", "host", cfg.SSHHost, "port", cfg.SSHPort, "hostKeyPath", cfg.SSHHostKey, "workingDir", workingDir)

	root, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	srv := &server{
		cfg:      cfg,
		logger:   logger,
		images:   asset.NewStore(os.DirFS(cfg.AssetDir), logger),
		recorder: metrics.NewRecorder(),
		root:     root,
	}
	srv.images.LoadAll(loop.ImagePaths(loop.DefaultRoster())...)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for clicks
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", srv.recorder.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "err", err)
			}
		}()
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(cfg.SSHHost, cfg.SSHPort))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// End every running round so sessions can close.
	cancelSessions()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if metricsServer != nil {
		_ = metricsServer.Shutdown(ctx)
	}
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware handles SSH sessions and runs a private round for each.
func (srv *server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := srv.logger.With("user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		srv.recorder.SessionStarted()
		defer srv.recorder.SessionEnded()

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(srv.root)
		defer cancel()
		stop := context.AfterFunc(sess.Context(), cancel)
		defer stop()

		opts := loop.OptionsFromConfig(srv.cfg)
		opts.Logger = logger
		opts.Recorder = srv.recorder

		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.RunOptions{
			Game:         opts,
			TermSizeFunc: sizeTracker.getSize,
			Images:       srv.images,
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize

var _ loop.Recorder = (*metrics.Recorder)(nil)
