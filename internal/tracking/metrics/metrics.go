package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	StageRecomputations      prometheus.Counter
	StatusConflictsApplied   prometheus.Counter
	NoteWritesCoalesced      prometheus.Counter
	NoteWritesFlushed        prometheus.Counter
	ProgressCacheHits        prometheus.Counter
	ProgressCacheMisses      prometheus.Counter
	FinancialOverlayFailures prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		StageRecomputations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deedflow_tracking_stage_recomputations_total",
			Help: "Total number of stage derivations run",
		}),
		StatusConflictsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deedflow_tracking_status_conflicts_applied_total",
			Help: "Total status upsert conflicts treated as already applied",
		}),
		NoteWritesCoalesced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deedflow_tracking_note_writes_coalesced_total",
			Help: "Total pending note writes cancelled by a newer edit",
		}),
		NoteWritesFlushed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deedflow_tracking_note_writes_flushed_total",
			Help: "Total debounced note writes persisted",
		}),
		ProgressCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deedflow_tracking_progress_cache_hits_total",
			Help: "Total progress reads served from cache",
		}),
		ProgressCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deedflow_tracking_progress_cache_misses_total",
			Help: "Total progress reads that recomputed",
		}),
		FinancialOverlayFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deedflow_tracking_financial_overlay_failures_total",
			Help: "Total financial gate lookups that failed and were omitted",
		}),
	}
}

func (m *Metrics) IncStageRecomputations() {
	if m != nil {
		m.StageRecomputations.Inc()
	}
}

func (m *Metrics) IncStatusConflictsApplied() {
	if m != nil {
		m.StatusConflictsApplied.Inc()
	}
}

func (m *Metrics) IncNoteWritesCoalesced() {
	if m != nil {
		m.NoteWritesCoalesced.Inc()
	}
}

func (m *Metrics) IncNoteWritesFlushed() {
	if m != nil {
		m.NoteWritesFlushed.Inc()
	}
}

func (m *Metrics) IncProgressCacheHits() {
	if m != nil {
		m.ProgressCacheHits.Inc()
	}
}

func (m *Metrics) IncProgressCacheMisses() {
	if m != nil {
		m.ProgressCacheMisses.Inc()
	}
}

func (m *Metrics) IncFinancialOverlayFailures() {
	if m != nil {
		m.FinancialOverlayFailures.Inc()
	}
}
