package store

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmnovak/neo-capstone/db"
)

func setupTestExporter(t *testing.T) *SQLiteExporter {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out", "approaches.db")

	exporter, err := NewSQLiteExporter(context.Background(), path, db.Migrate)
	require.NoError(t, err, "Failed to create test exporter")
	exporter.now = func() time.Time { return time.Date(2025, 5, 21, 14, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { exporter.Close() })
	return exporter
}

func TestExportAndReadRows(t *testing.T) {
	database, _, approaches := setupTestDatabase(t)
	exporter := setupTestExporter(t)
	ctx := context.Background()

	id, err := exporter.Export(ctx, database.Query())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	rows, err := exporter.Rows(ctx, id)
	require.NoError(t, err)
	require.Len(t, rows, len(approaches))

	eros := rows[0]
	assert.Equal(t, int64(0), eros.Seq)
	assert.Equal(t, "433", eros.Designation)
	assert.Equal(t, "Eros", eros.Name)
	assert.True(t, eros.DiameterKm.Valid)
	assert.Equal(t, 16.84, eros.DiameterKm.Float64)
	assert.True(t, eros.PotentiallyHazardous.Valid)
	assert.Equal(t, int64(0), eros.PotentiallyHazardous.Int64)
	assert.Equal(t, "1900-01-01 12:00", eros.DatetimeUtc)
	assert.Equal(t, 0.15, eros.DistanceAu)
	assert.Equal(t, 5.2, eros.VelocityKmS)

	// 直径不明のNEO
	unnamed := rows[1]
	assert.Equal(t, "2019 AA", unnamed.Designation)
	assert.False(t, unnamed.DiameterKm.Valid)
	assert.Equal(t, int64(1), unnamed.PotentiallyHazardous.Int64)

	// 未紐付けの接近記録
	orphan := rows[2]
	assert.Equal(t, "9999", orphan.Designation)
	assert.False(t, orphan.PotentiallyHazardous.Valid)

	export, err := exporter.queries.GetExport(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, int64(len(approaches)), export.RowCount)
	assert.Equal(t, "2025-05-21T14:30:00Z", export.CreatedAt)
}

func TestExportBatchesAreSeparate(t *testing.T) {
	database, _, approaches := setupTestDatabase(t)
	exporter := setupTestExporter(t)
	ctx := context.Background()

	first, err := exporter.Export(ctx, database.Query())
	require.NoError(t, err)
	second, err := exporter.Export(ctx, slices.Values(approaches[:2]))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	rows, err := exporter.Rows(ctx, second)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = exporter.Rows(ctx, first)
	require.NoError(t, err)
	assert.Len(t, rows, len(approaches))
}

func TestRowsUnknownExport(t *testing.T) {
	exporter := setupTestExporter(t)

	_, err := exporter.Rows(context.Background(), uuid.New())
	assert.Error(t, err)
}
