package service

import "quizcraft/internal/domain"

// Size thresholds for strategy selection. These are design constants,
// not configuration: small asks tolerate a short deadline, large asks
// need the work split into independently boundable units.
const (
	quickMaxCount     = 15
	optimizedMaxCount = 30
)

// SelectStrategy maps a requested question count to the generation
// strategy that should handle it. Pure and total: non-positive counts
// clamp to the minimum strategy.
func SelectStrategy(count int) domain.Strategy {
	switch {
	case count <= quickMaxCount:
		return domain.StrategyQuick
	case count <= optimizedMaxCount:
		return domain.StrategyOptimized
	default:
		return domain.StrategyBatch
	}
}
