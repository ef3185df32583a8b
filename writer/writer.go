// Package writer saves query results to files.
package writer

import (
	"context"
	"encoding/csv"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/jonathanmnovak/neo-capstone/db"
	"github.com/jonathanmnovak/neo-capstone/model"
	"github.com/jonathanmnovak/neo-capstone/store"
)

// SheetName is the worksheet that WriteXLSX fills.
const SheetName = "approaches"

// ErrUnsupportedFormat is returned by Write for an unknown file extension.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Write saves results to path, choosing the format from its extension.
func Write(ctx context.Context, path string, results iter.Seq[*model.CloseApproach]) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return writeFile(path, func(w io.Writer) error { return WriteCSV(w, results) })
	case ".json":
		return writeFile(path, func(w io.Writer) error { return WriteJSON(w, results) })
	case ".xlsx":
		return WriteXLSX(path, results)
	case ".db", ".sqlite":
		return writeSQLite(ctx, path, results)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close output file")
		}
	}()
	return write(f)
}

// WriteCSV writes a header row followed by one tabular row per approach.
func WriteCSV(w io.Writer, results iter.Seq[*model.CloseApproach]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.TabularHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for approach := range results {
		if err := cw.Write(model.TabularRow(approach)); err != nil {
			return errors.Wrapf(err, "write csv row for %s", approach.Designation())
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes an indented JSON array of structured records.
// No results still produce an empty array.
func WriteJSON(w io.Writer, results iter.Seq[*model.CloseApproach]) error {
	records := []model.ApproachRecord{}
	for approach := range results {
		records = append(records, model.StructuredRecord(approach))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(records), "encode json")
}

// WriteXLSX writes a workbook with a single sheet holding the header and
// one row per approach. Numbers are stored as numeric cells.
func WriteXLSX(path string, results iter.Seq[*model.CloseApproach]) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.Wrap(err, "name sheet")
	}

	header := make([]any, len(model.TabularHeader))
	for i, h := range model.TabularHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "write xlsx header")
	}

	rowNum := 2 // 1行目はヘッダー
	for approach := range results {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := xlsxRow(approach)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return errors.Wrapf(err, "write xlsx row %d", rowNum)
		}
		rowNum++
	}

	for i := range model.TabularHeader {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(SheetName, colName, colName, 20)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "save xlsx")
	}
	return nil
}

// xlsxRow follows TabularHeader but keeps numbers numeric. Unknown
// diameters and the NEO half of an unlinked approach are left blank.
func xlsxRow(approach *model.CloseApproach) []any {
	tabular := model.TabularRow(approach)
	row := make([]any, len(tabular))
	for i, v := range tabular {
		row[i] = v
	}
	if neo := approach.NEO(); neo != nil {
		if km, ok := neo.Diameter.Km(); ok {
			row[2] = km
		}
	}
	row[5] = approach.Distance
	row[6] = approach.Velocity
	return row
}

func writeSQLite(ctx context.Context, path string, results iter.Seq[*model.CloseApproach]) error {
	exporter, err := store.NewSQLiteExporter(ctx, path, db.Migrate)
	if err != nil {
		return err
	}
	defer exporter.Close()

	if _, err := exporter.Export(ctx, results); err != nil {
		return errors.Wrap(err, "export sqlite")
	}
	return nil
}
