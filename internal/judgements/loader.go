// Package judgements loads the per-conversation judgement JSON files
// produced by the evaluation harness into records ready for
// aggregation. Missing keys map to absent values; a file is never
// dropped for sparse data.
package judgements

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/modelbench/verdict/internal/metrics"
	"github.com/modelbench/verdict/internal/models"
)

// ErrNoJudgements is returned when the judgements directory yields no
// JSON files. This is a hard stop: there is nothing to analyze.
var ErrNoJudgements = errors.New("no judgement JSON files found")

type rawMetric struct {
	Score any `json:"score"`
}

type rawMessage struct {
	Message any `json:"message"`
}

type rawJudgement struct {
	ID           any          `json:"id"`
	ModelName    any          `json:"modelName"`
	Goal         any          `json:"goal"`
	StartTime    any          `json:"startTime"`
	EndTime      any          `json:"endTime"`
	Conversation []rawMessage `json:"conversation"`
	Quality      rawMetric    `json:"quality"`
	Correctness  rawMetric    `json:"correctness"`
	Grammar      rawMetric    `json:"grammar"`
	Completeness rawMetric    `json:"completeness"`
}

// Load reads every *.json file in dir in lexicographic filename order
// and returns one record per file. It fails with ErrNoJudgements when
// the directory yields no matching files.
func Load(dir string) ([]models.JudgementRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading judgements directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoJudgements, dir)
	}

	records := make([]models.JudgementRecord, 0, len(names))
	for _, name := range names {
		rec, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func loadFile(path string) (models.JudgementRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.JudgementRecord{}, err
	}

	if issues := ValidateJudgementBytes(data); len(issues) > 0 {
		slog.Warn("judgement file failed schema validation",
			"file", filepath.Base(path),
			"issues", strings.Join(issues, "; "))
	}

	var raw rawJudgement
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.JudgementRecord{}, fmt.Errorf("parsing JSON: %w", err)
	}

	return deriveRecord(raw), nil
}

func deriveRecord(raw rawJudgement) models.JudgementRecord {
	rec := models.JudgementRecord{
		ID:                coerceString(raw.ID),
		Model:             coerceString(raw.ModelName),
		Goal:              coerceString(raw.Goal),
		StartTime:         asNumber(raw.StartTime),
		EndTime:           asNumber(raw.EndTime),
		ConversationTurns: len(raw.Conversation),
	}

	for _, msg := range raw.Conversation {
		rec.ConversationTokens += len(strings.Fields(coerceString(msg.Message)))
	}

	rec.QualityScore = asNumber(raw.Quality.Score)
	rec.CorrectnessScore = asNumber(raw.Correctness.Score)
	rec.GrammarScore = asNumber(raw.Grammar.Score)
	rec.CompletenessScore = asNumber(raw.Completeness.Score)

	scores := make([]*float64, len(models.MetricKeys))
	for i, metric := range models.MetricKeys {
		scores[i] = rec.MetricScore(metric)
	}
	rec.OverallScore = metrics.MeanPresent(scores)

	// Latency only when both timestamps are numeric and ordered.
	if rec.StartTime != nil && rec.EndTime != nil && *rec.EndTime >= *rec.StartTime {
		lat := (*rec.EndTime - *rec.StartTime) / 1000
		rec.LatencySeconds = &lat
	}
	if rec.LatencySeconds != nil && rec.ConversationTurns > 0 {
		perMsg := *rec.LatencySeconds / float64(rec.ConversationTurns)
		rec.LatencySecondsPerMessage = &perMsg
	}

	return rec
}

// coerceString renders a decoded JSON value as text. Absent values map
// to the empty string; non-string values are formatted, matching the
// harness's permissive message fields.
func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// asNumber returns the value when it decoded as a JSON number, nil
// otherwise.
func asNumber(v any) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}
