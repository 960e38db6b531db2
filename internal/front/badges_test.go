package front

import "testing"

func TestAthleteStatusBadge(t *testing.T) {
	cases := []struct{ status, want string }{
		{"Active", "success"},
		{"active", "success"},
		{"Injured", "danger"},
		{"Recovering", "warning"},
		{"Retired", "secondary"},
		{"Inactive", "info"},
		{"", "info"},
	}
	for _, tc := range cases {
		if got := athleteStatusBadge(tc.status); got != tc.want {
			t.Errorf("athleteStatusBadge(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestInjurySeverityBadge(t *testing.T) {
	cases := []struct{ severity, want string }{
		{"Minor", "success"},
		{"Moderate", "warning"},
		{"Severe", "danger"},
		{"Critical", "dark"},
		{"whatever", "info"},
	}
	for _, tc := range cases {
		if got := injurySeverityBadge(tc.severity); got != tc.want {
			t.Errorf("injurySeverityBadge(%q) = %q, want %q", tc.severity, got, tc.want)
		}
	}
}

func TestInjuryStatusBadge(t *testing.T) {
	cases := []struct{ status, want string }{
		{"Active", "danger"},
		{"Recovering", "warning"},
		{"Rehabilitating", "info"},
		{"Healed", "success"},
		{"", "secondary"},
	}
	for _, tc := range cases {
		if got := injuryStatusBadge(tc.status); got != tc.want {
			t.Errorf("injuryStatusBadge(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestTreatmentResultBadge(t *testing.T) {
	cases := []struct{ result, want string }{
		{"Excellent - Complete Recovery", "success"},
		{"complete", "success"},
		{"Good - Significant Improvement", "info"},
		{"Moderate - Partial Improvement", "warning"},
		{"partial response", "warning"},
		{"Poor - Minimal Improvement", "danger"},
		{"No Change", "secondary"},
		{"Too Early to Assess", "secondary"},
		{"", "secondary"},
	}
	for _, tc := range cases {
		if got := treatmentResultBadge(tc.result); got != tc.want {
			t.Errorf("treatmentResultBadge(%q) = %q, want %q", tc.result, got, tc.want)
		}
	}
}
