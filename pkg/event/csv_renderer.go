package event

import (
	"bytes"
	"encoding/csv"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type CsvRenderer struct {
}

func NewCsvRenderer() *CsvRenderer {
	return &CsvRenderer{}
}

// Render lists events as CSV rows of "MM/DD", category and description,
// preceded by a header row.
func (t *CsvRenderer) Render(events []Event) (string, error) {
	data := make([][]string, 0, len(events)+1)
	data = append(data, []string{"Date", "Category", "Description"})
	for _, e := range events {
		data = append(data, []string{formatDay(e.Month, e.Day), e.Category.String(), e.Description})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func formatDay(month, day int) string {
	return fmt.Sprintf("%02d/%02d", month, day)
}
