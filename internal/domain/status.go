package domain

import "strings"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

var riskLabels = map[Severity]string{
	SeverityCritical: "HIGH RISK",
	SeverityWarning:  "MODERATE RISK",
	SeverityInfo:     "LOW RISK",
}

// RiskLabel returns the hub status label shown for a risk level.
func RiskLabel(level Severity) string {
	if label, ok := riskLabels[level]; ok {
		return label
	}

	return "UNKNOWN"
}

// ParseSeverity returns the severity for a given label (case-insensitive).
func ParseSeverity(label string) (Severity, bool) {
	s := Severity(strings.ToLower(strings.TrimSpace(label)))
	_, ok := riskLabels[s]

	return s, ok
}
