// Package metrics expõe contadores Prometheus da sincronização e um servidor
// operacional separado do tráfego da UI.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PushTotal pushes por resultado: confirmed, sent, error, dropped.
	PushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atelie",
		Subsystem: "sync",
		Name:      "push_total",
		Help:      "Tentativas de push para a planilha, por resultado.",
	}, []string{"result"})

	// PullTotal pulls por resultado: applied, skipped, empty, error.
	PullTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atelie",
		Subsystem: "sync",
		Name:      "pull_total",
		Help:      "Tentativas de pull da planilha, por resultado.",
	}, []string{"result"})

	// CollectionSize tamanho corrente de cada coleção local.
	CollectionSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "atelie",
		Subsystem: "state",
		Name:      "collection_size",
		Help:      "Número de registros por coleção no state store local.",
	}, []string{"collection"})
)
