package engine

import (
	"fmt"
	"strings"

	"ascend/internal/document"
)

// LogIncome adds income to a project and records it. An unknown project id
// returns the document unchanged.
func (r *Reducer) LogIncome(doc document.Document, projectID string, amount float64) (document.Document, error) {
	if amount <= 0 {
		return doc, ErrInvalidAmount
	}
	idx := doc.ProjectByID(projectID)
	if idx < 0 {
		return doc.Clone(), nil
	}
	next := doc.Clone()
	p := &next.Projects[idx]
	p.Income += amount
	r.prependLog(&next, document.LogIncome, amount, "Income: "+p.Title)
	return next, nil
}

// Metrics accepted by LogMeasurement.
var Metrics = []string{"weight", "chest", "waist", "arms", "thighs"}

// LogMeasurement stores a body measurement and records it.
func (r *Reducer) LogMeasurement(doc document.Document, metric string, value float64) (document.Document, error) {
	if value <= 0 {
		return doc, ErrInvalidAmount
	}
	name := strings.ToLower(strings.TrimSpace(metric))
	next := doc.Clone()
	m := &next.Physical.Measurements
	switch name {
	case "weight":
		next.Physical.Weight = value
	case "chest":
		m.Chest = value
	case "waist":
		m.Waist = value
	case "arms":
		m.Arms = value
	case "thighs":
		m.Thighs = value
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	r.prependLog(&next, document.LogMeasurement, value, "Measurement: "+name)
	return next, nil
}

// SetProjectStatus moves a project to a new status. An unknown project id
// returns the document unchanged.
func (r *Reducer) SetProjectStatus(doc document.Document, projectID string, status document.ProjectStatus) (document.Document, error) {
	if !status.IsValid() {
		return doc, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	next := doc.Clone()
	if idx := next.ProjectByID(projectID); idx >= 0 {
		next.Projects[idx].Status = status
	}
	return next, nil
}

// ParseProjectStatus accepts the display names case-insensitively, plus
// the short forms planning, active, done and hold.
func ParseProjectStatus(input string) (document.ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "planning":
		return document.StatusPlanning, nil
	case "in progress", "in-progress", "active":
		return document.StatusInProgress, nil
	case "completed", "done":
		return document.StatusCompleted, nil
	case "on hold", "on-hold", "hold":
		return document.StatusOnHold, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, input)
	}
}
