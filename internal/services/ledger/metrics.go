package ledger

// MetricsCollector receives operational signals from the ledger engine.
type MetricsCollector interface {
	RecordTransaction(txType string, amount int64)
	RecordError(operation, errType string)
	RecordRetry(operation string, attempt int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordTransaction(string, int64) {}
func (n *NoopMetricsCollector) RecordError(string, string)      {}
func (n *NoopMetricsCollector) RecordRetry(string, int)         {}
