package models

// Service is a service offered by the agency.
// Packages and sample requests reference services by id without a foreign key
// constraint, so readers must tolerate dangling references.
type Service struct {
	ID               uint64     `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"size:255;not null" json:"title" validate:"required"`
	Slug             string     `gorm:"uniqueIndex;size:255;not null" json:"slug" validate:"required"`
	Description      string     `gorm:"type:text;not null" json:"description" validate:"required"`
	ShortDescription string     `gorm:"size:500" json:"shortDescription"`
	ImageURL         string     `gorm:"size:500" json:"imageUrl"`
	Price            string     `gorm:"size:100" json:"price"`
	Category         string     `gorm:"size:100" json:"category"`
	Features         StringList `gorm:"type:text" json:"features"`
	CompletedOrders  int        `json:"completedOrders"`
	OrderIndex       int        `json:"orderIndex"`
	IsActive         bool       `json:"isActive"`
	MetaTitle        string     `gorm:"size:255" json:"metaTitle"`
	MetaDescription  string     `gorm:"size:500" json:"metaDescription"`
}

// Package is a priced offering, optionally tied to a service (soft reference).
type Package struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name" validate:"required"`
	ServiceID    *uint64    `json:"serviceId"`
	Price        string     `gorm:"size:100;not null" json:"price" validate:"required"`
	Description  string     `gorm:"type:text" json:"description"`
	Features     StringList `gorm:"type:text" json:"features"`
	DeliveryTime string     `gorm:"size:100" json:"deliveryTime"`
	IsPopular    bool       `json:"isPopular"`
	IsActive     bool       `json:"isActive"`
	OrderIndex   int        `json:"orderIndex"`
}

// Project is a portfolio entry.
type Project struct {
	ID               uint64     `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"size:255;not null" json:"title" validate:"required"`
	Slug             string     `gorm:"uniqueIndex;size:255;not null" json:"slug" validate:"required"`
	Description      string     `gorm:"type:text;not null" json:"description" validate:"required"`
	ShortDescription string     `gorm:"size:500" json:"shortDescription"`
	ImageURL         string     `gorm:"size:500" json:"imageUrl"`
	Category         string     `gorm:"size:100" json:"category"`
	ClientName       string     `gorm:"size:255" json:"clientName"`
	CompletionDate   string     `gorm:"size:50" json:"completionDate"`
	ProjectURL       string     `gorm:"size:500" json:"projectUrl"`
	Technologies     StringList `gorm:"type:text" json:"technologies"`
	IsActive         bool       `json:"isActive"`
	MetaTitle        string     `gorm:"size:255" json:"metaTitle"`
	MetaDescription  string     `gorm:"size:500" json:"metaDescription"`
}

// BlogPost is a blog article. IsPublished gates public visibility.
type BlogPost struct {
	ID              uint64 `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:255;not null" json:"title" validate:"required"`
	Slug            string `gorm:"uniqueIndex;size:255;not null" json:"slug" validate:"required"`
	Content         string `gorm:"type:text;not null" json:"content" validate:"required"`
	Excerpt         string `gorm:"size:500" json:"excerpt"`
	ImageURL        string `gorm:"size:500" json:"imageUrl"`
	Category        string `gorm:"size:100" json:"category"`
	Author          string `gorm:"size:255" json:"author"`
	IsPublished     bool   `json:"isPublished"`
	PublishedAt     string `gorm:"size:50" json:"publishedAt"`
	MetaTitle       string `gorm:"size:255" json:"metaTitle"`
	MetaDescription string `gorm:"size:500" json:"metaDescription"`
}
