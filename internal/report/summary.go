package report

import (
	"encoding/json"
	"fmt"

	"github.com/modelbench/verdict/internal/models"
)

// SummaryFile is the persisted leaderboard record.
const SummaryFile = "summary.json"

// WriteSummary persists the leaderboard summary as summary.json.
func (w *Writer) WriteSummary(summary models.Summary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}
	return w.writeAtomic(SummaryFile, append(data, '\n'))
}
