package export

import (
	"io"

	"bizscan/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

func writeXLSX[T domain.Record](w io.Writer, recs []T) error {
	f := excelize.NewFile()
	defer f.Close()

	var zero T
	header := zero.Columns()
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := r.Values()
		if err := f.SetSheetRow(sheetName, cell, &vals); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// ReadXLSX returns the rows of the first sheet as strings, header included.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(f.GetSheetName(0))
}
