package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCSV reads a CSV with a date column and a value column.
// Column detection: date|quarter|time and value|gdp|billions (case-insensitive).
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "open csv")
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Dataset{}, errors.Wrap(err, "read csv")
	}
	if len(recs) == 0 {
		return Dataset{}, errors.New("empty csv")
	}
	header := recs[0]
	idxDate, idxVal := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date", "quarter", "time":
			if idxDate == -1 {
				idxDate = i
			}
		case "value", "gdp", "billions":
			if idxVal == -1 {
				idxVal = i
			}
		}
	}
	if idxDate == -1 || idxVal == -1 {
		return Dataset{}, errors.New("csv: date/value columns not found")
	}
	d := Dataset{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	for n, row := range recs[1:] {
		if idxDate >= len(row) || idxVal >= len(row) {
			continue
		}
		raw := strings.TrimSpace(row[idxDate])
		t, err := ParseDate(raw)
		if err != nil {
			return Dataset{}, errors.Wrapf(err, "csv row %d", n+2)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idxVal]), 64)
		if err != nil {
			return Dataset{}, errors.Wrapf(err, "csv row %d", n+2)
		}
		d.Points = append(d.Points, DataPoint{Date: t, Raw: raw, Value: v})
	}
	if len(d.Points) == 0 {
		return Dataset{}, errors.New("csv: no valid rows parsed")
	}
	return d, nil
}

// LoadFile picks a loader from the file extension.
func LoadFile(path string) (Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return Dataset{}, errors.Wrap(err, "open json")
		}
		defer f.Close()
		return Parse(f)
	case ".csv":
		return LoadCSV(path)
	default:
		return Dataset{}, errors.Errorf("unsupported file: %s", ext)
	}
}
