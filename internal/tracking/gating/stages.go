package gating

import "deedflow/internal/tracking/models"

// ComputeStages folds the ordered catalog into stage descriptors under strict
// sequential dependency. One left-to-right pass carries a running
// all-prior-complete flag, so the whole derivation is O(n) rather than
// rescanning predecessors per stage.
//
// Grouped document types collapse into a single multi-document stage whose
// completion is the AND of every member's completion. Member sub-stages get
// their own nested fold, reset at group start, so a user can make partial
// progress inside an active outer stage.
//
// Document types missing from the completion map count as incomplete; keys in
// the map that are not in the catalog are ignored. numberOffset shifts only
// the displayed numbers.
func ComputeStages(defs []models.DocumentTypeDefinition, completion map[string]bool, numberOffset int) []models.StageDescriptor {
	stages := make([]models.StageDescriptor, 0, len(defs))
	emittedGroups := make(map[string]bool)
	running := true

	for _, def := range defs {
		var stage models.StageDescriptor
		if def.GroupKey != "" {
			if emittedGroups[def.GroupKey] {
				continue
			}
			emittedGroups[def.GroupKey] = true
			stage = groupStage(groupMembers(defs, def.GroupKey), completion)
		} else {
			stage = singletonStage(def, completion)
		}

		stage.StageNumber = len(stages) + 1
		stage.DisplayNumber = stage.StageNumber + numberOffset
		stage.IsLocked = !running
		stage.IsActive = running && !stage.IsCompleted
		stages = append(stages, stage)

		// Strict ordering holds across group boundaries too: the next stage
		// only unlocks once everything before it, grouped or not, is done.
		running = running && stage.IsCompleted
	}
	return stages
}

// groupMembers returns the catalog-registered membership of a group in
// catalog order. Membership need not be contiguous.
func groupMembers(defs []models.DocumentTypeDefinition, groupKey string) []models.DocumentTypeDefinition {
	var members []models.DocumentTypeDefinition
	for _, def := range defs {
		if def.GroupKey == groupKey {
			members = append(members, def)
		}
	}
	return members
}

func singletonStage(def models.DocumentTypeDefinition, completion map[string]bool) models.StageDescriptor {
	return models.StageDescriptor{
		DocTypeKeys: []string{def.Key},
		Required:    def.Required,
		IsCompleted: completion[def.Key],
	}
}

func groupStage(members []models.DocumentTypeDefinition, completion map[string]bool) models.StageDescriptor {
	stage := models.StageDescriptor{
		IsMultiDocument: true,
		IsCompleted:     true,
		DocTypeKeys:     make([]string, 0, len(members)),
		SubStages:       make([]models.SubStageState, 0, len(members)),
	}

	// The intra-group fold mirrors the outer one but resets at group start:
	// a member's lock depends on earlier members only, never on the outer
	// stage's own lock.
	intraRunning := true
	for pos, member := range members {
		completed := completion[member.Key]
		stage.DocTypeKeys = append(stage.DocTypeKeys, member.Key)
		stage.SubStages = append(stage.SubStages, models.SubStageState{
			Position:    pos + 1,
			DocTypeKey:  member.Key,
			IsCompleted: completed,
			IsLocked:    !intraRunning,
		})
		intraRunning = intraRunning && completed

		// Every member gates group completion, required or not.
		stage.IsCompleted = stage.IsCompleted && completed
		stage.Required = stage.Required || member.Required
	}
	return stage
}
