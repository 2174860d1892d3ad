package models

import "time"

// ArchiveObject is one write-once raw payload copy.
type ArchiveObject struct {
	Key         string    `gorm:"primaryKey;size:512" json:"key"`
	Body        []byte    `gorm:"not null" json:"-"`
	ContentType string    `gorm:"not null" json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ArchiveObject) TableName() string {
	return "archive_objects"
}
