package services

import (
	"context"

	"github.com/Adams-404/Between/application/ports"
	domain "github.com/Adams-404/Between/domain/services"
)

// InsightsService runs the analytics over a fresh snapshot of the answers.
type InsightsService struct {
	answers  *AnswerStore
	analyzer *domain.Analyzer
	features ports.RuntimeConfig
	clock    ports.Clock
}

// NewInsightsService creates a new insights service
func NewInsightsService(answers *AnswerStore, analyzer *domain.Analyzer, features ports.RuntimeConfig, clock ports.Clock) *InsightsService {
	return &InsightsService{
		answers:  answers,
		analyzer: analyzer,
		features: features,
		clock:    clock,
	}
}

// Analysis returns the all-time theme analysis. With the insight text
// feature off the Insight field is left empty.
func (i *InsightsService) Analysis(ctx context.Context) (domain.AnalysisResult, error) {
	answers, err := i.answers.AllAnswers(ctx)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	result := i.analyzer.Analyze(answers)
	if !i.features.GetFeatures().InsightText {
		result.Insight = ""
	}
	return result, nil
}

// Summary returns the statistics view as of now.
func (i *InsightsService) Summary(ctx context.Context) (domain.Summary, error) {
	answers, err := i.answers.AllAnswers(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(answers, i.clock.Now()), nil
}
