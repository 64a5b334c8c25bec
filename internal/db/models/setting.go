package models

// SiteSetting is an arbitrary key-value configuration entry.
// Keys are unique; no schema is enforced on key names.
type SiteSetting struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"uniqueIndex;size:255;not null" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}
