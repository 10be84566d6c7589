package profile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadCatalog reads the disease catalog: a CSV file whose first column is
// the disease display name, one per row. The catalog is read fresh on every
// call; a missing file yields an empty catalog, not an error.
func LoadCatalog(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open disease catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read disease catalog: %w", err)
	}

	diseases := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name != "" {
			diseases = append(diseases, name)
		}
	}
	return diseases, nil
}
