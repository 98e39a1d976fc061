// Package ops expõe o listener operacional, separado do servidor da aplicação:
// /health para probes e /metrics (Prometheus) quando habilitado.
package ops

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server servidor HTTP operacional.
type Server struct {
	srv *http.Server
}

// New cria o servidor em addr. exposeMetrics controla a rota /metrics.
func New(addr string, exposeMetrics bool) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	return &Server{srv: &http.Server{Addr: addr, Handler: mux}}
}

// Start bloqueia servindo até Shutdown.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown encerra o servidor respeitando o contexto.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
