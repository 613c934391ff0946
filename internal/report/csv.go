package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jonathan/resume-matcher/internal/types"
)

// csvHeader is the column layout of the exported record table, one row per
// JD term.
var csvHeader = []string{"term", "category", "matched", "method", "weight", "earned"}

// WriteCSV exports the per-term match records as CSV, one row per record in
// the scorer's stable order.
func WriteCSV(w io.Writer, result *types.ScoreResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range result.Records {
		row := []string{
			rec.Term,
			rec.Category.String(),
			strconv.FormatBool(rec.Matched),
			string(rec.Method),
			strconv.FormatFloat(rec.Weight, 'f', 2, 64),
			strconv.FormatFloat(rec.Earned, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
