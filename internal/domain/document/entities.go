package document

import "time"

// Version is one row of the append-only document history ledger. At most one
// row exists per (program, stored handle); replays of the same handle are
// no-ops. Version numbers are never persisted — they are recomputed at read
// time from row order within a category.
type Version struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	ProgramID    string    `gorm:"size:32;index:idx_document_versions_program;uniqueIndex:ux_document_versions_handle" json:"program_id"`
	Category     string    `gorm:"size:128" json:"category"`
	OriginalName string    `gorm:"size:255" json:"original_name"`
	StoredName   string    `gorm:"size:255;uniqueIndex:ux_document_versions_handle" json:"stored_name"`
	UploadedBy   string    `gorm:"size:32" json:"uploaded_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Version) TableName() string { return "program_document_versions" }
