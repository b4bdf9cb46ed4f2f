package services

// maxInsights bounds every pipeline result.
const maxInsights = 3

type analyzerFunc func(Snapshot) *GeneratedInsight

// insightAnalyzers is the pipeline, in its one and only order. Results
// surface strictly by this declaration order, never by severity, so
// reordering entries here changes which insights users see.
var insightAnalyzers = []analyzerFunc{
	analyzePostMealRise,
	analyzeCarbBudgetTrend,
	analyzeEveningPattern,
	analyzeExerciseConsistency,
	analyzeExerciseGlucoseImpact,
	analyzeCGMTimeInRange,
	analyzeCGMTrendPatterns,
	analyzeCGMAlertFrequency,
	analyzeSleepQualityGlucoseCorrelation,
	analyzeEnergyLevelGlucoseCorrelation,
	analyzeSleepDurationPatterns,
}

// RunInsightPipeline evaluates every analyzer against the snapshot and
// keeps the first three that fire. Insufficient data is a silent skip,
// never an error.
func RunInsightPipeline(snapshot Snapshot) []GeneratedInsight {
	insights := make([]GeneratedInsight, 0, maxInsights)
	for _, analyze := range insightAnalyzers {
		result := analyze(snapshot)
		if result == nil {
			continue
		}
		insights = append(insights, *result)
		if len(insights) == maxInsights {
			break
		}
	}
	return insights
}
