// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransactionsValidated cuenta documentos validados con éxito, por tipo.
	TransactionsValidated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_transactions_validated_total",
		Help: "Documentos de inventario validados con éxito, por tipo.",
	}, []string{"kind"})

	// LedgerEntriesWritten cuenta asientos escritos en el kardex.
	LedgerEntriesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_ledger_entries_written_total",
		Help: "Asientos del kardex escritos.",
	})

	// ValidationFailures cuenta validaciones rechazadas, por tipo y causa.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_validation_failures_total",
		Help: "Validaciones de documentos rechazadas, por tipo y causa.",
	}, []string{"kind", "cause"})
)
