package dataset

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// dateLayouts are tried in order when parsing the first element of a pair.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

type rawDataset struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SourceName  string  `json:"source_name"`
	FromDate    string  `json:"from_date"`
	ToDate      string  `json:"to_date"`
	Data        [][]any `json:"data"`
}

// Parse decodes the GDP document: an object whose "data" field holds
// [date, value] pairs. A missing "data" field yields an empty dataset.
func Parse(r io.Reader) (Dataset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "read dataset")
	}
	var raw rawDataset
	if err := json.Unmarshal(b, &raw); err != nil {
		return Dataset{}, errors.Wrap(err, "decode dataset")
	}
	d := Dataset{
		Name:        raw.Name,
		Description: raw.Description,
		Source:      raw.SourceName,
		FromDate:    raw.FromDate,
		ToDate:      raw.ToDate,
		Points:      make([]DataPoint, 0, len(raw.Data)),
	}
	for i, pair := range raw.Data {
		if len(pair) < 2 {
			return Dataset{}, errors.Errorf("data[%d]: want [date, value], got %d elements", i, len(pair))
		}
		s, ok := pair[0].(string)
		if !ok {
			return Dataset{}, errors.Errorf("data[%d]: date is %T, want string", i, pair[0])
		}
		v, ok := pair[1].(float64)
		if !ok {
			return Dataset{}, errors.Errorf("data[%d]: value is %T, want number", i, pair[1])
		}
		t, err := ParseDate(s)
		if err != nil {
			return Dataset{}, errors.Wrapf(err, "data[%d]", i)
		}
		d.Points = append(d.Points, DataPoint{Date: t, Raw: s, Value: v})
	}
	return d, nil
}

// ParseDate accepts plain ISO dates and full timestamps. The result is UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Errorf("unparseable date %q", s)
}
