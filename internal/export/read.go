package export

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"
)

// ReadCSV decodes a CSV artifact back into records.
func ReadCSV[T any](r io.Reader) ([]T, error) {
	var out []T
	if err := gocsv.Unmarshal(r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadJSON decodes a JSON artifact back into records.
func ReadJSON[T any](r io.Reader) ([]T, error) {
	var out []T
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
