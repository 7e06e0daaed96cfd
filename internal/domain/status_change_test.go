package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStatusChange(t *testing.T) {
	c := NewStatusChange(4, StatusOpen, StatusFixed, Bag{
		"title":          "ignored",
		"changed_by":     "3",
		"statusComment":  "verified on staging",
		"status_comment": "shadowed",
	})

	assert.Equal(t, int64(4), *c.DefectID)
	assert.Equal(t, StatusOpen, c.FromStatus)
	assert.Equal(t, StatusFixed, c.ToStatus)
	assert.Equal(t, int64(3), *c.ChangedBy)
	assert.Equal(t, "verified on staging", c.Comment)

	anonymous := NewStatusChange(4, StatusFixed, StatusClosed, Bag{})
	assert.Nil(t, anonymous.ChangedBy)
	assert.Empty(t, anonymous.Comment)
}

func TestStatusChangeProjections(t *testing.T) {
	changed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NormalizeStatusChange(Bag{
		"id":          int64(1),
		"defect_id":   int64(4),
		"from_status": "Open",
		"to_status":   "In Progress",
		"changed_by":  nil,
		"comment":     "",
		"changed_at":  changed,
	})

	assert.Equal(t, map[string]any{
		"defect_id":   int64(4),
		"from_status": "Open",
		"to_status":   "In Progress",
		"changed_by":  nil,
		"comment":     "",
	}, StatusChangeToStorage(c))

	assert.Equal(t, map[string]any{
		"id":         int64(1),
		"defectId":   int64(4),
		"fromStatus": "Open",
		"toStatus":   "In Progress",
		"changedBy":  nil,
		"comment":    "",
		"changedAt":  changed,
	}, StatusChangeToWire(c))
}
