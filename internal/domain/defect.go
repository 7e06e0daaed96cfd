package domain

import (
	"encoding/json"
	"slices"
	"time"
	"unicode/utf8"
)

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusFixed      Status = "Fixed"
	StatusClosed     Status = "Closed"
	StatusReopened   Status = "Reopened"
)

var Statuses = []Status{StatusOpen, StatusInProgress, StatusFixed, StatusClosed, StatusReopened}

type DefectType string

const (
	DefectTypeBug           DefectType = "Bug"
	DefectTypeEnhancement   DefectType = "Enhancement"
	DefectTypeTask          DefectType = "Task"
	DefectTypeDocumentation DefectType = "Documentation"
)

var DefectTypes = []DefectType{DefectTypeBug, DefectTypeEnhancement, DefectTypeTask, DefectTypeDocumentation}

type Environment string

const (
	EnvironmentDevelopment Environment = "Development"
	EnvironmentStaging     Environment = "Staging"
	EnvironmentProduction  Environment = "Production"
)

var Environments = []Environment{EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction}

type Resolution string

const (
	ResolutionFixed           Resolution = "Fixed"
	ResolutionDuplicate       Resolution = "Duplicate"
	ResolutionWontFix         Resolution = "Won't Fix"
	ResolutionCannotReproduce Resolution = "Cannot Reproduce"
	ResolutionWorksAsDesigned Resolution = "Works as Designed"
)

var Resolutions = []Resolution{
	ResolutionFixed,
	ResolutionDuplicate,
	ResolutionWontFix,
	ResolutionCannotReproduce,
	ResolutionWorksAsDesigned,
}

const (
	DefaultPriority = 3
	MinPriority     = 1
	MaxPriority     = 5

	maxTitleLength = 255
)

// Defect is a tracked bug, enhancement or task. ID and the timestamps are
// assigned by storage.
type Defect struct {
	ID              *int64
	Title           string
	Description     string
	Severity        Severity
	Status          Status
	Priority        int
	Type            DefectType
	AssigneeID      *int64
	ReporterID      *int64
	Environment     Environment
	AffectedVersion *string
	Resolution      *Resolution
	DueDate         *time.Time
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

// NormalizeDefect builds a canonical Defect from a wire or storage shaped bag.
func NormalizeDefect(b Bag) Defect {
	d := Defect{
		ID:              b.idField("id"),
		Title:           b.stringField("", "title"),
		Description:     b.stringField("", "description"),
		Severity:        Severity(b.stringField(string(SeverityMedium), "severity")),
		Status:          Status(b.stringField(string(StatusOpen), "status")),
		Priority:        b.intField(DefaultPriority, "priority"),
		Type:            DefectType(b.stringField(string(DefectTypeBug), "type")),
		AssigneeID:      b.idField("assigneeId", "assignee_id"),
		ReporterID:      b.idField("reporterId", "reporter_id"),
		Environment:     Environment(b.stringField(string(EnvironmentProduction), "environment")),
		AffectedVersion: b.optionalString("affectedVersion", "affected_version"),
		DueDate:         b.timeField("dueDate", "due_date"),
		CreatedAt:       b.timeField("createdAt", "created_at"),
		UpdatedAt:       b.timeField("updatedAt", "updated_at"),
	}

	if r := b.optionalString("resolution"); r != nil {
		res := Resolution(*r)
		d.Resolution = &res
	}

	return d
}

// ValidateDefect checks d field by field in declaration order.
func ValidateDefect(d Defect) ValidationResult {
	var errs []string

	if isBlank(d.Title) {
		errs = append(errs, "Title is required")
	}

	if utf8.RuneCountInString(d.Title) > maxTitleLength {
		errs = append(errs, "Title must be 255 characters or less")
	}

	if isBlank(d.Description) {
		errs = append(errs, "Description is required")
	}

	if !slices.Contains(Severities, d.Severity) {
		errs = append(errs, oneOfMessage("Severity", Severities))
	}

	if !slices.Contains(Statuses, d.Status) {
		errs = append(errs, oneOfMessage("Status", Statuses))
	}

	if d.Priority < MinPriority || d.Priority > MaxPriority {
		errs = append(errs, "Priority must be between 1 and 5")
	}

	if !slices.Contains(DefectTypes, d.Type) {
		errs = append(errs, oneOfMessage("Type", DefectTypes))
	}

	if d.Environment != "" && !slices.Contains(Environments, d.Environment) {
		errs = append(errs, oneOfMessage("Environment", Environments))
	}

	// resolution is only checked once one is set, whatever the status
	if d.Resolution != nil && *d.Resolution != "" && !slices.Contains(Resolutions, *d.Resolution) {
		errs = append(errs, oneOfMessage("Resolution", Resolutions))
	}

	return newValidationResult(errs)
}

// DefectToStorage returns the column map written to the defects table.
func DefectToStorage(d Defect) map[string]any {
	return map[string]any{
		"title":            d.Title,
		"description":      d.Description,
		"severity":         string(d.Severity),
		"status":           string(d.Status),
		"priority":         d.Priority,
		"type":             string(d.Type),
		"assignee_id":      derefInt64(d.AssigneeID),
		"reporter_id":      derefInt64(d.ReporterID),
		"environment":      string(d.Environment),
		"affected_version": derefString(d.AffectedVersion),
		"resolution":       d.resolutionValue(),
		"due_date":         derefTime(d.DueDate),
	}
}

// DefectToWire returns the camelCase shape exposed to API clients.
func DefectToWire(d Defect) map[string]any {
	return map[string]any{
		"id":              derefInt64(d.ID),
		"title":           d.Title,
		"description":     d.Description,
		"severity":        string(d.Severity),
		"status":          string(d.Status),
		"priority":        d.Priority,
		"type":            string(d.Type),
		"assigneeId":      derefInt64(d.AssigneeID),
		"reporterId":      derefInt64(d.ReporterID),
		"environment":     string(d.Environment),
		"affectedVersion": derefString(d.AffectedVersion),
		"resolution":      d.resolutionValue(),
		"dueDate":         derefTime(d.DueDate),
		"createdAt":       derefTime(d.CreatedAt),
		"updatedAt":       derefTime(d.UpdatedAt),
	}
}

func (d Defect) MarshalJSON() ([]byte, error) {
	return json.Marshal(DefectToWire(d))
}

func (d *Defect) UnmarshalJSON(data []byte) error {
	var b Bag
	if err := unmarshalBag(data, &b); err != nil {
		return err
	}

	*d = NormalizeDefect(b)

	return nil
}

func (d Defect) resolutionValue() any {
	if d.Resolution == nil {
		return nil
	}

	return string(*d.Resolution)
}
