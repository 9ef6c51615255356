// Package catalog loads galaxy redshift catalogs from CSV and collapses
// repeat observations into one entry per object.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrSchema indicates the input CSV is missing one of the required columns.
var ErrSchema = errors.New("catalog schema error")

// Required column names. Column order in the file does not matter and
// extra columns are ignored.
var requiredColumns = []string{"objid", "ra", "dec", "specz", "proj_sep"}

// Row is a single raw observation from the input catalog. Object IDs are
// not unique at this stage: the same galaxy may appear several times with
// independent redshift measurements.
type Row struct {
	ObjID   string  // object identifier, kept verbatim
	RA      float64 // right ascension (degrees)
	Dec     float64 // declination (degrees)
	SpecZ   float64 // spectroscopic redshift
	ProjSep float64 // projected separation from cluster centre (arcmin)
}

// Read parses a catalog from r. The first record must be a header row
// containing at least the required columns. A missing column returns an
// error wrapping ErrSchema; an unparseable numeric cell is reported with
// its line number.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchema, name)
		}
	}

	var rows []Row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		line++

		row := Row{ObjID: record[cols["objid"]]}
		fields := []struct {
			name string
			dst  *float64
		}{
			{"ra", &row.RA},
			{"dec", &row.Dec},
			{"specz", &row.SpecZ},
			{"proj_sep", &row.ProjSep},
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(record[cols[f.name]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: %w", line, f.name, err)
			}
			*f.dst = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Load reads a catalog from the file at path.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Read(f)
}
