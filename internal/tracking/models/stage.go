package models

// StageDescriptor is the derived state of one step in the completion
// sequence. Descriptors are ephemeral projections: recomputed on every input
// change, never persisted.
type StageDescriptor struct {
	// StageNumber is 1-based and contiguous after grouped types collapse.
	StageNumber int `json:"stage_number"`
	// DisplayNumber is StageNumber shifted by the pipeline's numbering
	// offset (handover stages continue the purchase numbering).
	DisplayNumber int `json:"display_number"`
	// DocTypeKeys lists the member document types in catalog order. A
	// singleton stage has exactly one key.
	DocTypeKeys []string `json:"doc_type_keys"`
	// Required stages count toward progress.
	Required        bool `json:"required"`
	IsMultiDocument bool `json:"is_multi_document"`
	IsCompleted     bool `json:"is_completed"`
	IsActive        bool `json:"is_active"`
	IsLocked        bool `json:"is_locked"`
	// SubStages is populated only for multi-document stages.
	SubStages []SubStageState `json:"sub_stages,omitempty"`
	// Financial is an informational overlay from the financial gate
	// collaborator. It never affects lock state.
	Financial *FinancialGate `json:"financial,omitempty"`
}

// SubStageState is a member's position inside a multi-document stage. Its
// lock is derived from earlier members only, independent of the outer
// stage's lock, so partial progress inside an active stage is possible.
type SubStageState struct {
	Position    int    `json:"position"`
	DocTypeKey  string `json:"doc_type_key"`
	IsCompleted bool   `json:"is_completed"`
	IsLocked    bool   `json:"is_locked"`
}

// FinancialGate is the opaque per-stage payment requirement supplied by the
// external financial collaborator.
type FinancialGate struct {
	IsComplete bool `json:"is_complete"`
	// PendingAmount is in minor currency units.
	PendingAmount int64 `json:"pending_amount"`
}

// Progress summarizes stage completion over required stages.
type Progress struct {
	CompletedCount int `json:"completed_count"`
	TotalCount     int `json:"total_count"`
	// Percentage is round(completed/total*100); defined as 0 when there are
	// no required stages.
	Percentage int `json:"percentage"`
	// CurrentActiveStageNumber is the first active stage, or the last stage
	// number when everything is complete.
	CurrentActiveStageNumber int `json:"current_active_stage_number"`
}
