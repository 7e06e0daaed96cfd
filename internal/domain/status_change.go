package domain

import (
	"encoding/json"
	"time"
)

// StatusChange records one move of a defect from one status to another.
type StatusChange struct {
	ID         *int64
	DefectID   *int64
	FromStatus Status
	ToStatus   Status
	ChangedBy  *int64
	Comment    string
	ChangedAt  *time.Time
}

// NewStatusChange builds the history entry for a defect update. The author
// and an optional note are taken from the update request under
// changedBy/changed_by and statusComment/status_comment.
func NewStatusChange(defectID int64, from, to Status, request Bag) StatusChange {
	return StatusChange{
		DefectID:   &defectID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  request.idField("changedBy", "changed_by"),
		Comment:    request.stringField("", "statusComment", "status_comment"),
	}
}

func NormalizeStatusChange(b Bag) StatusChange {
	return StatusChange{
		ID:         b.idField("id"),
		DefectID:   b.idField("defectId", "defect_id"),
		FromStatus: Status(b.stringField("", "fromStatus", "from_status")),
		ToStatus:   Status(b.stringField("", "toStatus", "to_status")),
		ChangedBy:  b.idField("changedBy", "changed_by"),
		Comment:    b.stringField("", "comment"),
		ChangedAt:  b.timeField("changedAt", "changed_at"),
	}
}

func StatusChangeToStorage(c StatusChange) map[string]any {
	return map[string]any{
		"defect_id":   derefInt64(c.DefectID),
		"from_status": string(c.FromStatus),
		"to_status":   string(c.ToStatus),
		"changed_by":  derefInt64(c.ChangedBy),
		"comment":     c.Comment,
	}
}

func StatusChangeToWire(c StatusChange) map[string]any {
	return map[string]any{
		"id":         derefInt64(c.ID),
		"defectId":   derefInt64(c.DefectID),
		"fromStatus": string(c.FromStatus),
		"toStatus":   string(c.ToStatus),
		"changedBy":  derefInt64(c.ChangedBy),
		"comment":    c.Comment,
		"changedAt":  derefTime(c.ChangedAt),
	}
}

func (c StatusChange) MarshalJSON() ([]byte, error) {
	return json.Marshal(StatusChangeToWire(c))
}
