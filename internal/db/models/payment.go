package models

// PaymentPlatform describes one way clients can send payment, with ordered
// step-by-step instructions.
type PaymentPlatform struct {
	ID         uint64     `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:255;not null" json:"name" validate:"required"`
	Tagline    string     `gorm:"size:500" json:"tagline"`
	LogoURL    string     `gorm:"size:500" json:"logoUrl"`
	WebsiteURL string     `gorm:"size:500" json:"websiteUrl"`
	Steps      StringList `gorm:"type:text" json:"steps"`
	ColorClass string     `gorm:"size:50" json:"colorClass"`
	IsActive   bool       `json:"isActive"`
	OrderIndex int        `json:"orderIndex"`
}

// PaymentVideo is a tutorial video for a payment platform.
// PlatformID is a soft reference to a PaymentPlatform and may dangle.
type PaymentVideo struct {
	ID           uint64  `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"size:255;not null" json:"title" validate:"required"`
	Description  string  `gorm:"size:500" json:"description"`
	VideoURL     string  `gorm:"size:500;not null" json:"videoUrl" validate:"required"`
	ThumbnailURL string  `gorm:"size:500" json:"thumbnailUrl"`
	PlatformID   *uint64 `json:"platformId"`
	IsActive     bool    `json:"isActive"`
	OrderIndex   int     `json:"orderIndex"`
}
