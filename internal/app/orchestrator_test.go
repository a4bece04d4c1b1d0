package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket_sync/internal/core/models"
	reportmodels "gomarket_sync/internal/reports/models"
	"gomarket_sync/pkg/errkind"
	"gomarket_sync/pkg/logger"
)

type fakeSupplier struct {
	records []models.SupplierStockRecord
	err     error
	calls   int
}

func (f *fakeSupplier) DownloadStock(context.Context) ([]models.SupplierStockRecord, error) {
	f.calls++
	return f.records, f.err
}

type fakeTarget struct {
	name   string
	err    error
	called bool
	got    []models.SupplierStockRecord
}

func (f *fakeTarget) Name() string { return f.name }

func (f *fakeTarget) Sync(_ context.Context, records []models.SupplierStockRecord) (models.SyncResult, error) {
	f.called = true
	f.got = records
	result := models.SyncResult{Marketplace: "test", Target: f.name}
	if f.err != nil {
		return result, f.err
	}
	result.Stocks = len(records)
	result.Prices = len(records)
	return result, nil
}

// fieldsLogger запоминает строки вместе с полями, добавленными через With.
type fieldsLogger struct {
	fields []interface{}
	lines  *[]string
}

func newFieldsLogger() fieldsLogger {
	return fieldsLogger{lines: &[]string{}}
}

func (l fieldsLogger) write(format string, v ...interface{}) {
	*l.lines = append(*l.lines, fmt.Sprint(l.fields...)+" "+fmt.Sprintf(format, v...))
}

func (l fieldsLogger) Log(format string, v ...interface{})   { l.write(format, v...) }
func (l fieldsLogger) Warn(format string, v ...interface{})  { l.write(format, v...) }
func (l fieldsLogger) Error(format string, v ...interface{}) { l.write(format, v...) }
func (l fieldsLogger) SetPrefix(string)                      {}

func (l fieldsLogger) With(args ...interface{}) logger.Logger {
	fields := append(append([]interface{}(nil), l.fields...), args...)
	return fieldsLogger{fields: fields, lines: l.lines}
}

type memoryReports struct {
	mu      sync.Mutex
	reports []reportmodels.SyncReport
}

func (m *memoryReports) Save(_ context.Context, report reportmodels.SyncReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, report)
	return nil
}

func (m *memoryReports) ByRun(_ context.Context, runID uuid.UUID) ([]reportmodels.SyncReport, error) {
	var result []reportmodels.SyncReport
	for _, r := range m.reports {
		if r.RunID == runID {
			result = append(result, r)
		}
	}
	return result, nil
}

func TestOrchestrator_FailedTargetDoesNotStopOthers(t *testing.T) {
	supplier := &fakeSupplier{records: []models.SupplierStockRecord{{Code: "A1", Quantity: ">10", Price: "100.00"}}}
	first := &fakeTarget{name: "ozon", err: fmt.Errorf("listing offers: %w", context.DeadlineExceeded)}
	second := &fakeTarget{name: "yandex/FBS", err: &errkind.StatusError{Code: 500}}
	third := &fakeTarget{name: "yandex/DBS"}
	reports := &memoryReports{}

	o := NewOrchestrator(supplier, []Target{first, second, third}, reports, logger.NewNopLogger())
	summary := o.Run(context.Background())

	assert.Equal(t, 1, supplier.calls)
	assert.True(t, first.called)
	assert.True(t, second.called)
	assert.True(t, third.called)
	assert.Equal(t, supplier.records, third.got)

	assert.Equal(t, map[string]errkind.Kind{
		"ozon":       errkind.Timeout,
		"yandex/FBS": errkind.Unexpected,
	}, summary.Failed)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "yandex/DBS", summary.Results[0].Target)

	saved, err := reports.ByRun(context.Background(), summary.RunID)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, "timeout", *saved[0].ErrorKind)
	assert.False(t, saved[2].Failed())

	assert.Equal(t, int32(1), o.Metrics().TargetsSucceeded.Load())
	assert.Equal(t, int32(2), o.Metrics().TargetsFailed.Load())
}

func TestOrchestrator_SupplierFailureSkipsTargets(t *testing.T) {
	supplier := &fakeSupplier{err: errors.New("archive is broken")}
	target := &fakeTarget{name: "ozon"}

	summary := NewOrchestrator(supplier, []Target{target}, nil, logger.NewNopLogger()).Run(context.Background())

	assert.False(t, target.called)
	assert.Equal(t, errkind.Unexpected, summary.Failed["supplier"])
	assert.Empty(t, summary.Results)
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	supplier := &fakeSupplier{}
	target := &fakeTarget{name: "ozon"}

	NewOrchestrator(supplier, []Target{target}, nil, logger.NewNopLogger()).Run(ctx)
	assert.False(t, target.called)
}

func TestOrchestrator_LogsCarryRunAndTarget(t *testing.T) {
	supplier := &fakeSupplier{records: []models.SupplierStockRecord{{Code: "A1", Quantity: "2", Price: "10"}}}
	failing := &fakeTarget{name: "yandex/DBS", err: errors.New("bad payload")}
	log := newFieldsLogger()

	summary := NewOrchestrator(supplier, []Target{failing}, nil, log).Run(context.Background())

	runField := fmt.Sprint("run_id", summary.RunID.String())
	require.NotEmpty(t, *log.lines)
	for _, line := range *log.lines {
		assert.Contains(t, line, runField)
	}

	var failure string
	for _, line := range *log.lines {
		if strings.Contains(line, "sync failed") {
			failure = line
		}
	}
	assert.Contains(t, failure, fmt.Sprint("run_id", summary.RunID.String(), "target", "yandex/DBS"))
	assert.Contains(t, failure, "bad payload")
}
