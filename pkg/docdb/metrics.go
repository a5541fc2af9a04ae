package docdb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// writeOutcomes counts every accepted or rejected single-document write,
// labeled by database and outcome. Bulk writes increment this once per
// item, matching the "independent and atomic per-item" rule in spec §4.C.
var writeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "docdb",
	Name:      "write_outcomes_total",
	Help:      "Document writes, labeled by database and outcome.",
}, []string{"db", "outcome"})

const (
	outcomeCreated   = "created"
	outcomeUpdated   = "updated"
	outcomeDeleted   = "deleted"
	outcomeRecreated = "recreated"
	outcomeRejected  = "rejected"
)
