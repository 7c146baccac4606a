package dto

// CreateShiftTemplateRequest defines a reusable shift window.
type CreateShiftTemplateRequest struct {
	Name           string  `json:"name" validate:"required"`
	StartTime      string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string  `json:"end_time" validate:"required,datetime=15:04"`
	IsOvernight    bool    `json:"is_overnight"`
	IsSplit        bool    `json:"is_split"`
	SplitStartTime *string `json:"split_start_time,omitempty" validate:"omitempty,datetime=15:04"`
	SplitEndTime   *string `json:"split_end_time,omitempty" validate:"omitempty,datetime=15:04"`
}

// UpdateShiftTemplateRequest rewrites a shift window definition. Assignments
// already snapshotted from the old definition are unaffected.
type UpdateShiftTemplateRequest struct {
	Name           string  `json:"name" validate:"required"`
	StartTime      string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string  `json:"end_time" validate:"required,datetime=15:04"`
	IsOvernight    bool    `json:"is_overnight"`
	IsSplit        bool    `json:"is_split"`
	SplitStartTime *string `json:"split_start_time,omitempty" validate:"omitempty,datetime=15:04"`
	SplitEndTime   *string `json:"split_end_time,omitempty" validate:"omitempty,datetime=15:04"`
}
