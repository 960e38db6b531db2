package front

import "strings"

// Bootstrap badge variants per field value. Kept next to the option lists in
// models.go so adding an option forces a look at its color.

func athleteStatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "active":
		return "success"
	case "injured":
		return "danger"
	case "recovering":
		return "warning"
	case "retired":
		return "secondary"
	default:
		return "info"
	}
}

func injurySeverityBadge(severity string) string {
	switch strings.ToLower(severity) {
	case "minor":
		return "success"
	case "moderate":
		return "warning"
	case "severe":
		return "danger"
	case "critical":
		return "dark"
	default:
		return "info"
	}
}

func injuryStatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "active":
		return "danger"
	case "recovering":
		return "warning"
	case "rehabilitating":
		return "info"
	case "healed":
		return "success"
	default:
		return "secondary"
	}
}

// treatmentResultBadge matches by substring because result is free text,
// the form offers a fixed list but nothing enforces it.
func treatmentResultBadge(result string) string {
	if result == "" {
		return "secondary"
	}
	lower := strings.ToLower(result)
	switch {
	case strings.Contains(lower, "excellent") || strings.Contains(lower, "complete"):
		return "success"
	case strings.Contains(lower, "good") || strings.Contains(lower, "significant"):
		return "info"
	case strings.Contains(lower, "moderate") || strings.Contains(lower, "partial"):
		return "warning"
	case strings.Contains(lower, "poor") || strings.Contains(lower, "minimal"):
		return "danger"
	default:
		return "secondary"
	}
}
