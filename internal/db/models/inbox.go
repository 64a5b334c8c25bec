package models

import "time"

// Sample request statuses.
const (
	SampleStatusPending   = "pending"
	SampleStatusReviewed  = "reviewed"
	SampleStatusCompleted = "completed"
)

// ContactMessage is a submission from the public contact form.
// Append-only from the public side; admins may mark read or delete.
type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:500;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// SampleRequest is a submission from the public free-sample form.
// ServiceID is a soft reference to a Service and may dangle.
type SampleRequest struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:255;not null" json:"fullName"`
	Phone        string    `gorm:"size:50;not null" json:"phone"`
	Country      string    `gorm:"size:100;not null" json:"country"`
	ServiceID    *uint64   `json:"serviceId"`
	Requirements string    `gorm:"type:text;not null" json:"requirements"`
	Status       string    `gorm:"size:50;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
