package ops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TransacoesRegistradas conta os movimentos de estoque registrados, por tipo.
var TransacoesRegistradas = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "estoque_transacoes_registradas_total",
		Help: "Total de transações de estoque registradas, por tipo (entrada/saida).",
	},
	[]string{"tipo"},
)
