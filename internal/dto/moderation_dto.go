package dto

type CreateReportRequest struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
	Reason     string `json:"reason"`
}

type UpdateReportStatusRequest struct {
	Status          string `json:"status"`
	ResolutionNotes string `json:"resolution_notes"`
	// TargetStatus optionally changes the reported entity's own status as
	// part of the same decision (user targets only, e.g. "suspended").
	TargetStatus string `json:"target_status,omitempty"`
}

type SetUserStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type RemoveContentRequest struct {
	Reason string `json:"reason"`
}
