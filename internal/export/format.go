package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Format string

const (
	CSV   Format = "csv"
	JSON  Format = "json"
	Excel Format = "excel"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted --output values.
var Formats = []Format{CSV, JSON, Excel}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON, Excel:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want csv, json or excel)", ErrUnknownFormat, s)
	}
}

func (f Format) Ext() string {
	switch f {
	case Excel:
		return "xlsx"
	default:
		return string(f)
	}
}

const timestampLayout = "20060102_150405"

// DefaultPath builds <dir>/<kind>_<YYYYMMDD_HHMMSS>.<ext>. Two exports of
// the same kind within one second map to the same path.
func DefaultPath(dir, kind string, f Format, now time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", kind, now.Format(timestampLayout), f.Ext())
	return filepath.Join(dir, name)
}
