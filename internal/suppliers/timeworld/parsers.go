package timeworld

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/extrame/xls"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readXLS читает первый лист книги Excel 97-2003. Номера строк сохраняются:
// пустые строки остаются nil, поэтому заголовок остается на своей строке.
// Row(i) у extrame/xls падает на строках без ячеек, поэтому строки берутся через ReadAllCells.
func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if workbook == nil || workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("xls has no sheets")
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil || sheet.MaxRow == 0 {
		return nil, fmt.Errorf("xls sheet 0 is empty")
	}

	// лимит по числу строк первого листа отсекает остальные листы
	return workbook.ReadAllCells(int(sheet.MaxRow) + 1), nil
}

// readCSV читает CSV в Windows-1251 с разделителем ';'.
func readCSV(reader io.Reader) ([][]string, error) {
	decoder := transform.NewReader(reader, charmap.Windows1251.NewDecoder())
	csvReader := csv.NewReader(decoder)
	csvReader.Comma = ';'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	return rows, nil
}
