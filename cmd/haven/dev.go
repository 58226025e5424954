package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ReloadPath is the dev server's live-reload socket
const ReloadPath = "/haven/reload"

// rebuildDelay collapses bursts of file events into one rebuild
const rebuildDelay = 100 * time.Millisecond

type devServer struct {
	builder   *builder
	log       *zap.Logger
	watcher   *fsnotify.Watcher
	wsClients map[*websocket.Conn]bool
	wsMutex   sync.RWMutex
	upgrader  websocket.Upgrader
	buildMu   sync.Mutex
}

func newDevCommand(a *app) *cobra.Command {
	var port int
	var host string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long:  `Builds the site, serves it and rebuilds on change, reloading connected browsers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != 0 {
				a.cfg.Dev.Port = port
			}
			if host != "" {
				a.cfg.Dev.Host = host
			}
			return runDev(a)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the dev server on (overrides dev.port)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind the dev server to (overrides dev.host)")

	return cmd
}

func newDevServer(b *builder, log *zap.Logger) *devServer {
	return &devServer{
		builder:   b,
		log:       log,
		wsClients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// Allow all origins in dev mode
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func runDev(a *app) error {
	s := newDevServer(&builder{cfg: a.cfg, log: a.log}, a.log)

	if err := s.builder.run(ReloadPath); err != nil {
		// Serve anyway so the next save can fix it
		s.log.Error("initial build failed", zap.Error(err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()
	s.watcher = watcher
	if err := s.setupWatcher(a.cfg.Dev.WatchDirs); err != nil {
		return fmt.Errorf("failed to watch sources: %w", err)
	}
	go s.watchFiles()

	addr := fmt.Sprintf("%s:%d", a.cfg.Dev.Host, a.cfg.Dev.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dev server running", zap.String("url", "http://"+addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down dev server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.closeClients()
	return srv.Shutdown(shutdownCtx)
}

func (s *devServer) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.NoCache)

	r.Get(ReloadPath, s.handleWebSocket)
	r.Handle("/*", http.FileServer(http.Dir(s.builder.cfg.Build.Output)))
	return r
}

func (s *devServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (s *devServer) setupWatcher(dirs []string) error {
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return nil
			}
			// Skip hidden directories
			if path != dir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return s.watcher.Add(path)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *devServer) watchFiles() {
	debounce := time.NewTimer(rebuildDelay)
	if !debounce.Stop() {
		<-debounce.C
	}
	var changed []string

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !isRelevantFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					s.watcher.Add(event.Name)
				}
			}
			changed = append(changed, event.Name)
			debounce.Reset(rebuildDelay)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("watcher error", zap.Error(err))

		case <-debounce.C:
			if len(changed) > 0 {
				s.rebuild(changed)
				changed = nil
			}
		}
	}
}

func isRelevantFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go", ".css", ".js", ".html", ".yaml", ".yml", ".png", ".jpg", ".svg":
		return true
	}
	return false
}

func (s *devServer) rebuild(changed []string) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	s.log.Info("rebuilding", zap.Int("files", len(changed)), zap.String("first", changed[0]))
	start := time.Now()
	if err := s.builder.run(ReloadPath); err != nil {
		s.log.Error("rebuild failed", zap.Error(err))
		s.notifyClients("ERROR " + err.Error())
		return
	}
	s.log.Info("rebuilt", zap.Duration("took", time.Since(start)))
	s.notifyClients("RELOAD")
}

func (s *devServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.wsMutex.Lock()
	s.wsClients[conn] = true
	s.wsMutex.Unlock()

	defer func() {
		s.wsMutex.Lock()
		delete(s.wsClients, conn)
		s.wsMutex.Unlock()
	}()

	// Drain until the browser goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Debug("websocket closed", zap.Error(err))
			}
			return
		}
	}
}

// notifyClients sends a text frame to every connected browser
func (s *devServer) notifyClients(message string) {
	s.wsMutex.Lock()
	defer s.wsMutex.Unlock()

	for client := range s.wsClients {
		if err := client.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			s.log.Debug("failed to notify client", zap.Error(err))
		}
	}
}

func (s *devServer) closeClients() {
	s.wsMutex.Lock()
	defer s.wsMutex.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for client := range s.wsClients {
		if err := client.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
			s.log.Debug("websocket close frame failed", zap.Error(err))
		}
		client.Close()
		delete(s.wsClients, client)
	}
}
