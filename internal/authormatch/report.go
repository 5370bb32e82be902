package authormatch

import (
	"github.com/scholarly/paper-check-service/internal/domain"
)

// rowType labels every author reconciliation row for the report renderer.
const rowType = "Author"

// AssembleReport projects match records into display rows. The indicator is
// green for round-1 exact pairs, amber for round-2 loose pairs, and red for
// unmatched names. This is purely a projection; no further matching happens
// here.
func AssembleReport(records []domain.MatchRecord) []domain.DisplayRow {
	rows := make([]domain.DisplayRow, len(records))
	for i, rec := range records {
		indicator := domain.IndicatorNone
		switch {
		case rec.Matched && rec.Exact:
			indicator = domain.IndicatorExact
		case rec.Matched:
			indicator = domain.IndicatorLoose
		}
		rows[i] = domain.DisplayRow{
			Type:          rowType,
			Indicator:     indicator,
			DocumentName:  rec.DocumentName,
			ReferenceName: rec.ReferenceName,
		}
	}
	return rows
}
