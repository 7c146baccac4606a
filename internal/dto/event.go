package dto

// CreatePersonalEventRequest registers an occupied date range for the caller.
type CreatePersonalEventRequest struct {
	Title       string  `json:"title" validate:"required"`
	EventType   string  `json:"event_type" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsAllDay    bool    `json:"is_all_day"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Description *string `json:"description,omitempty"`
}

// UpdatePersonalEventRequest rewrites an event owned by the caller.
type UpdatePersonalEventRequest struct {
	Title       string  `json:"title" validate:"required"`
	EventType   string  `json:"event_type" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsAllDay    bool    `json:"is_all_day"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Description *string `json:"description,omitempty"`
}
