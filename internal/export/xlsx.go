package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/impact-search/internal/model"
)

// WriteXLSX writes b as a workbook with one sheet per record list. Each
// sheet starts with a header row.
func WriteXLSX(w io.Writer, b model.Bundle) error {
	f := xlsx.NewFile()
	for _, t := range tables(b) {
		sheet, err := f.AddSheet(t.name)
		if err != nil {
			return eris.Wrapf(err, "xlsx: add sheet %s", t.name)
		}
		addRow(sheet, t.header)
		for _, r := range t.rows {
			addRow(sheet, r)
		}
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write workbook")
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells []string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().SetString(c)
	}
}
