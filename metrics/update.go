package metrics

import "sync/atomic"

// SyncMetrics содержит счетчики одного запуска синхронизации по всем площадкам.
type SyncMetrics struct {
	TargetsSucceeded atomic.Int32
	TargetsFailed    atomic.Int32
	StocksUploaded   atomic.Int32
	PricesUploaded   atomic.Int32
}
