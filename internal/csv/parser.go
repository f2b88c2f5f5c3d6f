package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"portfolioData/internal/models"

	"github.com/jszwec/csvutil"
)

const assetSeparator = ";"

// Decode reads records previously written by Encode.
func Decode(r io.Reader) ([]models.Record, error) {
	var rows []models.CSVRecord
	decoder, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		assets := []string{}
		if row.Assets != "" {
			assets = strings.Split(row.Assets, assetSeparator)
		}
		records = append(records, models.Record{
			ID:          row.ID,
			Title:       row.Title,
			Year:        row.Year,
			Client:      row.Client,
			Type:        row.Type,
			Description: row.Description,
			Assets:      assets,
		})
	}
	return records, nil
}

// Encode writes records with a header row. Assets are joined with ";".
func Encode(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(cw)

	if len(records) == 0 {
		if err := encoder.EncodeHeader(models.CSVRecord{}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, r := range records {
		row := models.CSVRecord{
			ID:          r.ID,
			Title:       r.Title,
			Year:        r.Year,
			Client:      r.Client,
			Type:        r.Type,
			Description: r.Description,
			Assets:      strings.Join(r.Assets, assetSeparator),
		}
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode record %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
