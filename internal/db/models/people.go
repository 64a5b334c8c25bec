package models

// Testimonial is a client review shown on the public site.
type Testimonial struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	ClientName string `gorm:"size:255;not null" json:"clientName" validate:"required"`
	Company    string `gorm:"size:255" json:"company"`
	Review     string `gorm:"type:text;not null" json:"review" validate:"required"`
	Rating     int    `json:"rating" validate:"omitempty,min=1,max=5"`
	AvatarURL  string `gorm:"size:500" json:"avatarUrl"`
	IsActive   bool   `json:"isActive"`
	OrderIndex int    `json:"orderIndex"`
}

// TeamMember is a member of the agency team.
type TeamMember struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name" validate:"required"`
	Designation string      `gorm:"size:255;not null" json:"designation" validate:"required"`
	Bio         string      `gorm:"type:text" json:"bio"`
	AvatarURL   string      `gorm:"size:500" json:"avatarUrl"`
	IsFounder   bool        `json:"isFounder"`
	SocialLinks SocialLinks `gorm:"type:text" json:"socialLinks"`
	OrderIndex  int         `json:"orderIndex"`
	IsActive    bool        `json:"isActive"`
}
