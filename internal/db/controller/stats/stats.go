// Package stats aggregates the counters shown on the admin dashboard.
package stats

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/inbox"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// Dashboard holds the content and inbox counters for the admin overview.
type Dashboard struct {
	TotalServices        int64 `json:"totalServices"`
	TotalProjects        int64 `json:"totalProjects"`
	TotalMessages        int64 `json:"totalMessages"`
	UnreadMessages       int64 `json:"unreadMessages"`
	TotalSampleRequests  int64 `json:"totalSampleRequests"`
	PendingSampleReqs    int64 `json:"pendingSampleRequests"`
	TotalBlogPosts       int64 `json:"totalBlogPosts"`
	TotalTestimonials    int64 `json:"totalTestimonials"`
}

// GetDashboard collects the dashboard counters.
func GetDashboard(gdb *gorm.DB) (*Dashboard, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var d Dashboard

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Service{}, &d.TotalServices},
		{&models.Project{}, &d.TotalProjects},
		{&models.BlogPost{}, &d.TotalBlogPosts},
		{&models.Testimonial{}, &d.TotalTestimonials},
	}

	for _, c := range counts {
		if err := gdb.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	total, unread, err := inbox.CountMessages(gdb)
	if err != nil {
		return nil, err
	}
	d.TotalMessages = total
	d.UnreadMessages = unread

	total, pending, err := inbox.CountSampleRequests(gdb)
	if err != nil {
		return nil, err
	}
	d.TotalSampleRequests = total
	d.PendingSampleReqs = pending

	return &d, nil
}
