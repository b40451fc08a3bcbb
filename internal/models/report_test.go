package models

import "testing"

func TestIsValidReportTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Forward path
		{ReportStatusOpen, ReportStatusUnderReview, true},
		{ReportStatusUnderReview, ReportStatusResolved, true},
		{ReportStatusUnderReview, ReportStatusDismissed, true},

		// under_review is optional, not a mandatory gate
		{ReportStatusOpen, ReportStatusResolved, true},
		{ReportStatusOpen, ReportStatusDismissed, true},

		// Terminal states are absorbing
		{ReportStatusResolved, ReportStatusOpen, false},
		{ReportStatusResolved, ReportStatusUnderReview, false},
		{ReportStatusResolved, ReportStatusDismissed, false},
		{ReportStatusDismissed, ReportStatusOpen, false},
		{ReportStatusDismissed, ReportStatusResolved, false},

		// No backwards movement
		{ReportStatusUnderReview, ReportStatusOpen, false},

		// No self transitions
		{ReportStatusOpen, ReportStatusOpen, false},
		{ReportStatusUnderReview, ReportStatusUnderReview, false},

		// Unknown statuses
		{"nonexistent", ReportStatusResolved, false},
		{ReportStatusOpen, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidReportTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidReportTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		ReportStatusOpen, ReportStatusUnderReview,
		ReportStatusResolved, ReportStatusDismissed,
	}

	for _, status := range allStatuses {
		if _, ok := ValidReportTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidReportTransitions map", status)
		}
	}
}

func TestIsTerminalReportStatus(t *testing.T) {
	if !IsTerminalReportStatus(ReportStatusResolved) || !IsTerminalReportStatus(ReportStatusDismissed) {
		t.Error("resolved and dismissed must be terminal")
	}
	if IsTerminalReportStatus(ReportStatusOpen) || IsTerminalReportStatus(ReportStatusUnderReview) {
		t.Error("open and under_review must not be terminal")
	}
	for from, allowed := range ValidReportTransitions {
		if IsTerminalReportStatus(from) && len(allowed) != 0 {
			t.Errorf("terminal status %q has outgoing transitions %v", from, allowed)
		}
	}
}
