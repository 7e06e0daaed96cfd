package domain

import (
	"encoding/json"
	"time"
)

// Attachment describes a file uploaded against a defect. Only metadata is
// kept here, the content lives at FilePath.
type Attachment struct {
	ID         *int64
	DefectID   *int64
	UserID     *int64
	FileName   string
	FilePath   string
	FileSize   *int64
	MimeType   *string
	UploadedAt *time.Time
}

func NormalizeAttachment(b Bag) Attachment {
	return Attachment{
		ID:         b.idField("id"),
		DefectID:   b.idField("defectId", "defect_id"),
		UserID:     b.idField("userId", "user_id"),
		FileName:   b.stringField("", "fileName", "file_name"),
		FilePath:   b.stringField("", "filePath", "file_path"),
		FileSize:   b.optionalInt64("fileSize", "file_size"),
		MimeType:   b.optionalString("mimeType", "mime_type"),
		UploadedAt: b.timeField("uploadedAt", "uploaded_at"),
	}
}

func ValidateAttachment(a Attachment) ValidationResult {
	var errs []string

	if a.DefectID == nil {
		errs = append(errs, "Defect ID is required")
	}

	if a.UserID == nil {
		errs = append(errs, "User ID is required")
	}

	if isBlank(a.FileName) {
		errs = append(errs, "File name is required")
	}

	if isBlank(a.FilePath) {
		errs = append(errs, "File path is required")
	}

	return newValidationResult(errs)
}

func AttachmentToStorage(a Attachment) map[string]any {
	return map[string]any{
		"defect_id": derefInt64(a.DefectID),
		"user_id":   derefInt64(a.UserID),
		"file_name": a.FileName,
		"file_path": a.FilePath,
		"file_size": derefInt64(a.FileSize),
		"mime_type": derefString(a.MimeType),
	}
}

func AttachmentToWire(a Attachment) map[string]any {
	return map[string]any{
		"id":         derefInt64(a.ID),
		"defectId":   derefInt64(a.DefectID),
		"userId":     derefInt64(a.UserID),
		"fileName":   a.FileName,
		"filePath":   a.FilePath,
		"fileSize":   derefInt64(a.FileSize),
		"mimeType":   derefString(a.MimeType),
		"uploadedAt": derefTime(a.UploadedAt),
	}
}

func (a Attachment) MarshalJSON() ([]byte, error) {
	return json.Marshal(AttachmentToWire(a))
}
