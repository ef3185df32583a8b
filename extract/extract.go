// Package extract loads near-Earth objects from the NEO CSV file and close
// approaches from the close-approach JSON feed.
package extract

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"

	"github.com/jonathanmnovak/neo-capstone/model"
)

// Column positions in a close-approach data row.
const (
	cadDesignation = 0
	cadTime        = 3
	cadDistance    = 4
	cadVelocity    = 7
)

// LoadNEOs reads near-Earth objects from a CSV file.
func LoadNEOs(path string) ([]*model.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open neo file")
	}
	defer f.Close()

	neos, err := ReadNEOs(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return neos, nil
}

// ReadNEOs parses NEO CSV rows. The header must contain "pdes"; "name",
// "diameter" and "pha" are optional and treated as empty when missing.
func ReadNEOs(r io.Reader) ([]*model.NearEarthObject, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[h] = i
	}
	if _, ok := columns["pdes"]; !ok {
		return nil, model.NewFormatError("pdes", "required column is missing from header")
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var neos []*model.NearEarthObject
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read row %d", line)
		}

		diameter, err := model.ParseDiameter(field(record, "diameter"))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", line)
		}
		neo, err := model.NewNearEarthObject(
			field(record, "pdes"),
			field(record, "name"),
			diameter,
			field(record, "pha") == "Y",
		)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", line)
		}
		neos = append(neos, neo)
	}
	return neos, nil
}

// LoadApproaches reads close approaches from a JSON feed file.
func LoadApproaches(path string) ([]*model.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open close-approach file")
	}
	defer f.Close()

	approaches, err := ReadApproaches(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return approaches, nil
}

type cadFeed struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// ReadApproaches parses the "data" rows of a close-approach feed.
func ReadApproaches(r io.Reader) ([]*model.CloseApproach, error) {
	var feed cadFeed
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return nil, errors.Wrap(err, "decode close-approach feed")
	}
	if feed.Data == nil {
		return nil, model.NewFormatError("data", "feed has no data rows")
	}

	approaches := make([]*model.CloseApproach, 0, len(feed.Data))
	for i, row := range feed.Data {
		approach, err := approachFromRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "data row %d", i)
		}
		approaches = append(approaches, approach)
	}
	return approaches, nil
}

func approachFromRow(row []any) (*model.CloseApproach, error) {
	if len(row) <= cadVelocity {
		return nil, model.NewFormatError("data", "row has %d columns, need at least %d", len(row), cadVelocity+1)
	}

	designation, ok := row[cadDesignation].(string)
	if !ok {
		return nil, model.NewTypeError("des", "%v is not a string value", row[cadDesignation])
	}
	timeStr, ok := row[cadTime].(string)
	if !ok {
		return nil, model.NewTypeError("cd", "%v is not a string value", row[cadTime])
	}
	distance, err := numeric("dist", row[cadDistance])
	if err != nil {
		return nil, err
	}
	velocity, err := numeric("v_rel", row[cadVelocity])
	if err != nil {
		return nil, err
	}

	return model.NewCloseApproach(designation, timeStr, distance, velocity)
}

// numeric accepts a numeric string, which is how the feed encodes numbers,
// or a bare JSON number.
func numeric(field string, v any) (float64, error) {
	switch n := v.(type) {
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, model.NewFormatError(field, "%q is not a number", n)
		}
		return f, nil
	case float64:
		return n, nil
	default:
		return 0, model.NewTypeError(field, "%v is not a numeric string", v)
	}
}
