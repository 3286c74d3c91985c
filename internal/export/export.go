package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"bizscan/internal/domain"

	"github.com/gocarina/gocsv"
)

// Artifact kinds used in generated file names.
const (
	KindJobs           = "scraped_jobs"
	KindLeads          = "leads"
	KindLeadsQualified = "leads_qualified"
	KindPrices         = "price_monitor"
)

// Target says where an export goes. Path wins over Dir/Kind.
type Target struct {
	Format Format
	Path   string
	Dir    string
	Kind   string
}

// Write encodes recs to w in the given format.
func Write[T domain.Record](w io.Writer, recs []T, f Format) error {
	switch f {
	case CSV:
		return gocsv.Marshal(recs, w)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case Excel:
		return writeXLSX(w, recs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ToFile exports recs and returns the written path. An empty collection is
// a no-op: nothing is written and the path is "".
func ToFile[T domain.Record](recs []T, t Target, now func() time.Time) (string, error) {
	if len(recs) == 0 {
		log.Printf("[export] no records to export")
		return "", nil
	}
	format, err := ParseFormat(string(t.Format))
	if err != nil {
		return "", err
	}

	path := t.Path
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if path == "" {
		path = DefaultPath(t.Dir, t.Kind, format, now())
		// generated names are never reused
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}

	if err := Write(f, recs, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	log.Printf("[export] wrote %d records to %s", len(recs), path)
	return path, nil
}
