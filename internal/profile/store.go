package profile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// header is written once, before the first data row of a fresh record.
var header = []string{"Name", "Age", "Weight", "Height", "Disease"}

// diseaseDelimiter joins the disease list into a single stored field.
// Disease names must not contain it; the catalog controls the vocabulary.
const diseaseDelimiter = ";"

// Store appends profiles to a flat CSV record. Writes are serialized behind
// a mutex so concurrent submissions cannot interleave rows.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a Store writing to path. The file is created lazily on
// the first Append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append writes exactly one row, opening and closing the record per call.
// The header row is written first when the destination does not yet exist.
// I/O errors propagate to the caller; there is no retry.
func (s *Store) Append(p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, statErr := os.Stat(s.path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open profile record: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write record header: %w", err)
		}
	}

	row := []string{
		p.Name,
		strconv.Itoa(p.Age),
		formatNumber(p.Weight),
		formatNumber(p.Height),
		strings.Join(p.Diseases, diseaseDelimiter),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write profile row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush profile row: %w", err)
	}

	log.Info().Str("name", p.Name).Int("diseases", len(p.Diseases)).Msg("profile stored")
	return nil
}

// ReadAll returns the raw stored record for the records page.
func (s *Store) ReadAll() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read profile record: %w", err)
	}
	return string(data), nil
}
