package timeworld

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"gomarket_sync/internal/core/models"
	"gomarket_sync/pkg/logger"
)

// Adapter скачивает архив остатков часов и разбирает его в записи.
type Adapter struct {
	fetcher   Fetcher
	url       string
	headerRow int
	log       logger.Logger
}

func NewAdapter(fetcher Fetcher, url string, headerRow int, log logger.Logger) *Adapter {
	return &Adapter{fetcher: fetcher, url: url, headerRow: headerRow, log: log}
}

func (a *Adapter) DownloadStock(ctx context.Context) ([]models.SupplierStockRecord, error) {
	data, err := a.fetcher.Fetch(ctx, a.url)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", a.url, err)
	}
	a.log.Log("Fetched archive size: %d bytes", len(data))

	rows, err := readArchive(data)
	if err != nil {
		return nil, err
	}

	records, err := rowsToRecords(rows, a.headerRow)
	if err != nil {
		return nil, err
	}
	a.log.Log("Parsed %d watch remnants", len(records))
	return records, nil
}

const (
	stockFileXLS = "ostatki.xls"
	stockFileCSV = "ostatki.csv"
)

// readArchive разбирает таблицу остатков из zip.
func readArchive(data []byte) ([][]string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	file := pickStockFile(archive.File)
	if file == nil {
		return nil, fmt.Errorf("archive contains no .xls or .csv file")
	}

	content, err := readZipFile(file)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(path.Ext(file.Name), ".xls") {
		return readXLS(content)
	}
	return readCSV(bytes.NewReader(content))
}

// pickStockFile выбирает ostatki.xls, затем ostatki.csv, затем первую другую таблицу.
// Служебные файлы macOS (__MACOSX/, ._*) и скрытые файлы пропускаются.
func pickStockFile(files []*zip.File) *zip.File {
	var csvFile, other *zip.File
	for _, file := range files {
		if strings.HasPrefix(file.Name, "__MACOSX/") || strings.Contains(file.Name, "/__MACOSX/") {
			continue
		}
		base := strings.ToLower(path.Base(file.Name))
		if strings.HasPrefix(base, ".") || file.FileInfo().IsDir() {
			continue
		}

		switch {
		case base == stockFileXLS:
			return file
		case base == stockFileCSV:
			if csvFile == nil {
				csvFile = file
			}
		case path.Ext(base) == ".xls" || path.Ext(base) == ".csv":
			if other == nil {
				other = file
			}
		}
	}
	if csvFile != nil {
		return csvFile
	}
	return other
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.Name, err)
	}
	return content, nil
}
