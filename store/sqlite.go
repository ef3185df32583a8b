package store

import (
	"context"
	"database/sql"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jonathanmnovak/neo-capstone/db"
	"github.com/jonathanmnovak/neo-capstone/model"
)

// MigrationFunc はデータベースのスキーマを準備し、適用した版の数を返す関数です。
type MigrationFunc func(ctx context.Context, conn *sql.DB) (int, error)

// SQLiteExporter は検索結果をSQLiteファイルに書き出します。
// Exportを呼ぶたびに新しいUUIDで識別されるバッチが1つ追加されます。
type SQLiteExporter struct {
	conn    *sql.DB
	queries *db.Queries
	now     func() time.Time
}

// NewSQLiteExporter は新しいSQLiteExporterを作成します。
func NewSQLiteExporter(ctx context.Context, path string, migrate MigrationFunc) (*SQLiteExporter, error) {
	// 出力先ディレクトリの作成（存在しない場合）
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "create output directory")
		}
	}

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}

	// マイグレーションの実行
	if _, err := migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "initialize export tables")
	}

	return &SQLiteExporter{
		conn:    conn,
		queries: db.New(conn),
		now:     time.Now,
	}, nil
}

// Export は接近記録を1つのバッチとして保存し、そのIDを返します。
func (e *SQLiteExporter) Export(ctx context.Context, results iter.Seq[*model.CloseApproach]) (uuid.UUID, error) {
	id := uuid.New()

	// トランザクションの開始
	tx, err := e.conn.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback() // コミット後のロールバックは何もしない

	queriesWithTx := e.queries.WithTx(tx)

	err = queriesWithTx.CreateExport(ctx, db.CreateExportParams{
		ID:        id.String(),
		CreatedAt: e.now().UTC().Format(time.RFC3339),
		RowCount:  0,
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "create export")
	}

	var seq int64
	for approach := range results {
		if err := queriesWithTx.CreateApproachRow(ctx, approachRowParams(id, seq, approach)); err != nil {
			return uuid.Nil, errors.Wrapf(err, "write approach %d", seq)
		}
		seq++
	}

	err = queriesWithTx.SetExportRowCount(ctx, db.SetExportRowCountParams{RowCount: seq, ID: id.String()})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "update export row count")
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, errors.Wrap(err, "commit export")
	}
	return id, nil
}

func approachRowParams(id uuid.UUID, seq int64, approach *model.CloseApproach) db.CreateApproachRowParams {
	rec := model.StructuredRecord(approach)
	params := db.CreateApproachRowParams{
		ExportID:    id.String(),
		Seq:         seq,
		Designation: rec.NEO.Designation,
		Name:        rec.NEO.Name,
		DatetimeUtc: rec.DatetimeUTC,
		DistanceAu:  rec.DistanceAU,
		VelocityKmS: rec.VelocityKmS,
	}
	if rec.NEO.DiameterKm != nil {
		params.DiameterKm = sql.NullFloat64{Float64: *rec.NEO.DiameterKm, Valid: true}
	}
	// 未紐付けの接近記録は危険フラグが不明
	if approach.NEO() != nil {
		var hazardous int64
		if rec.NEO.Hazardous {
			hazardous = 1
		}
		params.PotentiallyHazardous = sql.NullInt64{Int64: hazardous, Valid: true}
	}
	return params
}

// Rows は指定バッチの行を読み込み順に返します。
func (e *SQLiteExporter) Rows(ctx context.Context, id uuid.UUID) ([]db.Approach, error) {
	if _, err := e.queries.GetExport(ctx, id.String()); err != nil {
		return nil, errors.Wrapf(err, "export %s", id)
	}
	return e.queries.ListExportApproaches(ctx, id.String())
}

// Close はデータベースの接続を閉じます。
func (e *SQLiteExporter) Close() error {
	return e.conn.Close()
}
