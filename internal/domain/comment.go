package domain

import (
	"encoding/json"
	"time"
)

// Comment is a note left by a user on a defect.
type Comment struct {
	ID        *int64
	DefectID  *int64
	UserID    *int64
	Content   string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func NormalizeComment(b Bag) Comment {
	return Comment{
		ID:        b.idField("id"),
		DefectID:  b.idField("defectId", "defect_id"),
		UserID:    b.idField("userId", "user_id"),
		Content:   b.stringField("", "content"),
		CreatedAt: b.timeField("createdAt", "created_at"),
		UpdatedAt: b.timeField("updatedAt", "updated_at"),
	}
}

func ValidateComment(c Comment) ValidationResult {
	var errs []string

	if c.DefectID == nil {
		errs = append(errs, "Defect ID is required")
	}

	if c.UserID == nil {
		errs = append(errs, "User ID is required")
	}

	if isBlank(c.Content) {
		errs = append(errs, "Content is required")
	}

	return newValidationResult(errs)
}

func CommentToStorage(c Comment) map[string]any {
	return map[string]any{
		"defect_id": derefInt64(c.DefectID),
		"user_id":   derefInt64(c.UserID),
		"content":   c.Content,
	}
}

func CommentToWire(c Comment) map[string]any {
	return map[string]any{
		"id":        derefInt64(c.ID),
		"defectId":  derefInt64(c.DefectID),
		"userId":    derefInt64(c.UserID),
		"content":   c.Content,
		"createdAt": derefTime(c.CreatedAt),
		"updatedAt": derefTime(c.UpdatedAt),
	}
}

func (c Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(CommentToWire(c))
}
