// Package httpapi exposes the CRM core over a JSON REST surface. It is the
// process's stand-in for the single-page UI: thin handlers over the store
// and the SDR review engine, no auth, no sessions.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/ports"
	"agentcrm/internal/store"
	"agentcrm/internal/usecase/sdr"
)

type Server struct {
	store *store.Store
	sdr   *sdr.Service
	agent ports.ChatAgent
	mail  ports.MailTransport

	now   func() time.Time
	newID func(prefix string) string
}

func NewServer(st *store.Store, sdrSvc *sdr.Service, agent ports.ChatAgent, mailer ports.MailTransport) *Server {
	return &Server{
		store: st,
		sdr:   sdrSvc,
		agent: agent,
		mail:  mailer,
		now:   time.Now,
		newID: func(prefix string) string { return prefix + "-" + uuid.NewString() },
	}
}

// Router builds the chi mux. baseCtx carries the process logger so request
// logs keep the bootstrap attrs.
func (s *Server) Router(baseCtx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(baseCtx))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/icp-profiles", func(r chi.Router) {
			r.Get("/", s.listICPProfiles)
			r.Post("/", s.createICPProfile)
			r.Post("/{id}/run", s.runICPProfile)
		})

		r.Route("/sdr", func(r chi.Router) {
			r.Get("/batches", s.listBatches)
			r.Get("/leads", s.listLeads)
			r.Post("/leads/{id}/approve", s.approveLead)
			r.Post("/leads/{id}/reject", s.rejectLead)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", s.listCustomers)
			r.Post("/", s.createCustomer)
			r.Get("/{id}", s.getCustomer)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", s.listDeals)
			r.Post("/", s.createDeal)
			r.Patch("/{id}", s.updateDeal)
			r.Post("/{id}/analyze", s.analyzeDeal)
			r.Post("/{id}/draft-email", s.draftDealEmail)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.listTasks)
			r.Post("/", s.createTask)
			r.Patch("/{id}", s.updateTask)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.listTemplates)
			r.Post("/", s.createTemplate)
			r.Put("/{id}", s.updateTemplate)
			r.Delete("/{id}", s.deleteTemplate)
		})

		r.Get("/activities", s.listActivities)

		r.Route("/chat", func(r chi.Router) {
			r.Get("/", s.chatHistory)
			r.Post("/", s.chatSend)
			r.Delete("/", s.chatClear)
		})

		r.Route("/mail", func(r chi.Router) {
			r.Post("/connect", s.mailConnect)
			r.Post("/send", s.mailSend)
			r.Get("/check", s.mailCheck)
		})
	})

	return r
}

// ListenAndServe blocks until ctx is done, then shuts the server down with
// a short grace period.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "httpapi"))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(logCtx, "http api listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger carries the bootstrap logger into each request context and
// logs one line per request.
func requestLogger(baseCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logging.WithLogger(r.Context(), logging.Logger(baseCtx))
			ctx = logging.WithAttrs(ctx,
				slog.String("component", "httpapi"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))
			logging.Info(ctx, "request handled", slog.Duration("elapsed", time.Since(start)))
		})
	}
}
