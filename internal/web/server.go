package web

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/errors"
)

// Server serves the task pages over HTTP
type Server struct {
	store      api.API
	controller *Controller
	renderer   *Renderer
	logger     *log.Logger
	cfg        config.ServerConfig
	handler    http.Handler
}

// New wires the controller, views and routes
func New(store api.API, logger *log.Logger, cfg config.ServerConfig) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:      store,
		controller: NewController(store),
		renderer:   renderer,
		logger:     logger,
		cfg:        cfg,
	}
	s.handler = s.wrap(s.routes())
	return s, nil
}

// Handler returns the fully wrapped handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /static/", http.FileServerFS(assets))

	mux.HandleFunc("GET /{$}", s.action(s.home))
	mux.HandleFunc("GET /tasks/new", s.action(s.newTask))
	mux.HandleFunc("POST /tasks", s.action(s.create))
	mux.HandleFunc("GET /tasks/{id}/edit", s.action(s.edit))
	mux.HandleFunc("PATCH /tasks/{id}", s.action(s.update))
	mux.HandleFunc("PUT /tasks/{id}", s.action(s.update))
	mux.HandleFunc("DELETE /tasks/{id}", s.action(s.destroy))
	mux.HandleFunc("POST /tasks/{id}", s.action(s.override))

	mux.HandleFunc("/", s.action(func(r *http.Request) (Response, error) {
		return NotFound(nil), nil
	}))

	return mux
}

func (s *Server) wrap(h http.Handler) http.Handler {
	return withRequestID(withAccessLog(s.logger, withRecovery(s.logger, h)))
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		ErrorLog:     s.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type actionFunc func(r *http.Request) (Response, error)

func (s *Server) action(fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := fn(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.write(w, r, resp)
	}
}

func (s *Server) home(r *http.Request) (Response, error) {
	return s.controller.Home(r.Context())
}

func (s *Server) newTask(r *http.Request) (Response, error) {
	return s.controller.New(r.Context())
}

func (s *Server) create(r *http.Request) (Response, error) {
	params, err := ParseTaskParams(r)
	if err != nil {
		return Response{}, err
	}
	return s.controller.Create(r.Context(), params)
}

func (s *Server) edit(r *http.Request) (Response, error) {
	return s.controller.Edit(r.Context(), ParseTaskID(r.PathValue("id")))
}

func (s *Server) update(r *http.Request) (Response, error) {
	params, err := ParseTaskParams(r)
	if err != nil {
		return Response{}, err
	}
	return s.controller.Update(r.Context(), ParseTaskID(r.PathValue("id")), params)
}

func (s *Server) destroy(r *http.Request) (Response, error) {
	return s.controller.Destroy(r.Context(), ParseTaskID(r.PathValue("id")))
}

// override routes a form POST carrying _method to update or destroy
func (s *Server) override(r *http.Request) (Response, error) {
	switch method := MethodOverride(r); method {
	case http.MethodPatch, http.MethodPut:
		return s.update(r)
	case http.MethodDelete:
		return s.destroy(r)
	default:
		return Response{}, errors.NewInvalidInputError(FieldMethod, method, "must be patch, put or delete")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("health check failed", "error", err, "request_id", RequestID(r.Context()))
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, resp Response) {
	if resp.IsRedirect() {
		http.Redirect(w, r, resp.Location, resp.Status)
		return
	}

	body, err := s.renderer.Render(resp.View, resp.Page)
	if err != nil {
		s.logger.Error("render failed", "view", resp.View, "error", err, "request_id", RequestID(r.Context()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if errors.ShouldLogError(err) {
		keyvals := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"code", errors.GetErrorCode(err),
			"error", err,
			"request_id", RequestID(r.Context()),
		}
		if appErr, ok := errors.AsAppError(err); ok {
			for key, value := range appErr.Context {
				keyvals = append(keyvals, key, value)
			}
		}
		s.logger.Error("request failed", keyvals...)
	}

	if status == http.StatusNotFound {
		s.write(w, r, NotFound(err))
		return
	}

	message := errors.GetUserMessage(err)
	if !errors.IsAppError(err) {
		message = "An unexpected error occurred. Please try again."
	}
	s.write(w, r, Render(status, ViewError, Page{Title: "Error", Message: message}))
}
