package gating

import (
	"math"

	"deedflow/internal/tracking/models"
)

// ComputeProgress reduces a stage sequence to a completion percentage and the
// current active stage number. Only required stages enter the percentage;
// optional stages neither count toward the denominator nor the numerator.
// A pipeline with no required stages reports 0, not a division error.
func ComputeProgress(stages []models.StageDescriptor) models.Progress {
	var p models.Progress
	for _, stage := range stages {
		if !stage.Required {
			continue
		}
		p.TotalCount++
		if stage.IsCompleted {
			p.CompletedCount++
		}
	}
	if p.TotalCount > 0 {
		p.Percentage = int(math.Round(float64(p.CompletedCount) / float64(p.TotalCount) * 100))
	}

	for _, stage := range stages {
		if stage.IsActive {
			p.CurrentActiveStageNumber = stage.StageNumber
			return p
		}
	}
	// No active stage means everything is complete; report the last stage.
	if len(stages) > 0 {
		p.CurrentActiveStageNumber = stages[len(stages)-1].StageNumber
	}
	return p
}
