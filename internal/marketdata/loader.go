package marketdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// LoadCSV reads a daily close-price table from a CSV file and returns a
// validated series. The file must carry a header with "date" and "close"
// columns; a "symbol" column, when present, overrides the configured
// symbol. Other columns are ignored.
func LoadCSV(path, symbol string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price data: %w", err)
	}
	defer f.Close()

	return readCSV(f, symbol)
}

func readCSV(r io.Reader, symbol string) (*Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	dateCol, closeCol, symbolCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		case "symbol":
			symbolCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("CSV header missing date/close columns: %v", header)
	}

	var points []models.PricePoint
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		date, err := time.Parse(models.DateLayout, strings.TrimSpace(record[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q: %w", line, record[dateCol], err)
		}

		closePrice, err := decimal.NewFromString(strings.TrimSpace(record[closeCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad close %q: %w", line, record[closeCol], err)
		}

		if symbolCol >= 0 && record[symbolCol] != "" {
			symbol = strings.ToUpper(strings.TrimSpace(record[symbolCol]))
		}

		points = append(points, models.PricePoint{Date: date, Close: closePrice})
	}

	return NewSeries(symbol, points)
}
