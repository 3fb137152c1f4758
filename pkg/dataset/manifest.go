package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Manifest column headers.
const (
	columnFileName = "FileName"
	columnClass    = "Class"
)

// Entry is one dataset row: a file path relative to the data
// directory and its class label.
type Entry struct {
	FileName string
	Class    string
}

// LoadManifest reads a CSV dataset manifest. The header row must
// contain FileName and Class columns; their order and any additional
// columns are ignored. Rows are returned in file order.
func LoadManifest(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	return ReadManifest(f)
}

// ReadManifest parses manifest rows from r. See LoadManifest.
func ReadManifest(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest header: %w", err)
	}

	fileIdx, classIdx := -1, -1
	for i, name := range header {
		switch name {
		case columnFileName:
			fileIdx = i
		case columnClass:
			classIdx = i
		}
	}
	if fileIdx < 0 || classIdx < 0 {
		return nil, fmt.Errorf("manifest header must contain %q and %q columns, got %v", columnFileName, columnClass, header)
	}

	var entries []Entry
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest row: %w", err)
		}
		if fileIdx >= len(row) || classIdx >= len(row) {
			return nil, fmt.Errorf("manifest line %d has %d columns, expected at least %d", line, len(row), max(fileIdx, classIdx)+1)
		}
		entries = append(entries, Entry{
			FileName: row[fileIdx],
			Class:    row[classIdx],
		})
	}

	return entries, nil
}
