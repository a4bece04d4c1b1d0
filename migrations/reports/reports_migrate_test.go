package reports

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket_sync/pkg/dbconnect/migration"
)

const existsQuery = "SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = $1)"
const markQuery = "INSERT INTO migrations.migrations (name, time) VALUES ($1, current_timestamp)"

func TestCreateSyncReportsTable_AppliesAndMarks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs("sync.reports").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS sync.reports")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(markQuery)).
		WithArgs("sync.reports").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, (&CreateSyncReportsTable{}).UpMigration(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSyncReportsTable_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs("sync.reports").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, (&CreateSyncReportsTable{}).UpMigration(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_StopsOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE SCHEMA IF NOT EXISTS migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS migrations.migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE SCHEMA IF NOT EXISTS sync")).
		WillReturnError(assert.AnError)

	err = migration.Apply(db, All()...)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "migration 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
