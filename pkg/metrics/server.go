package metrics

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

var log = logging.NewLogger("wordpad-metrics")

// SessionResponse is the body of GET /session.
type SessionResponse struct {
	ID      string          `json:"id"`
	Session session.Session `json:"session"`
	Stats   session.Stats   `json:"stats"`
}

// NewHandler routes /metrics, /healthz and, when st is not nil, /session.
func NewHandler(r *Recorder, st *session.Store) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.HandlerFor(r.Registry(), promhttp.HandlerOpts{
		Registry: r.Registry(),
	}))

	router.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	if st != nil {
		router.Get("/session", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, SessionResponse{
				ID:      st.ID(),
				Session: st.Snapshot(),
				Stats:   st.Stats(),
			})
		})
	}

	return router
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("Failed to encode response")
	}
}

// Serve listens on addr and serves h until ctx is cancelled. The returned
// error is nil after a clean shutdown.
func Serve(ctx context.Context, addr string, h http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return ServeListener(ctx, ln, h)
}

// ServeListener is Serve on an existing listener.
func ServeListener(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", ln.Addr().String()).Info("Serving metrics")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
