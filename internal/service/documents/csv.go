package documents

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/drphonenord/repairdesk/internal/domain"
)

var csvHeader = []string{"Date", "First", "Last", "Phone", "Email", "City", "Model", "Description", "ID", "Viewed"}

// renderQuotesCSV writes quotes as semicolon-separated CSV, newest first.
func renderQuotesCSV(quotes []domain.Quote) ([]byte, error) {
	sorted := make([]domain.Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, q := range sorted {
		row := []string{
			q.CreatedAt.Format(domain.DateFormat),
			q.FirstName,
			q.LastName,
			q.Phone,
			q.Email,
			q.City,
			q.Model,
			q.Issue,
			q.ID,
			yesNo(q.Viewed),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
