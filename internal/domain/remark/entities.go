package remark

import "time"

// Remark is a free-form annotation on a program. Append-only, never edited,
// no effect on workflow state.
type Remark struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	RemarkID  string    `gorm:"size:32;uniqueIndex:ux_remarks_remark_id" json:"remark_id"`
	ProgramID string    `gorm:"size:32;index:idx_remarks_program" json:"program_id"`
	AuthorID  string    `gorm:"size:32" json:"author_id"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Remark) TableName() string { return "program_remarks" }
