package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Demo request status
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

type DemoRequest struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Requester information
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"not null;index" json:"email"`
	Organization string `gorm:"not null" json:"organization"`
	Message      string `gorm:"type:text" json:"message,omitempty"`

	// Triage
	Status string `gorm:"not null;default:new;index" json:"status"`

	// Audit fields
	IPAddress   string     `json:"ip_address,omitempty"`
	UserAgent   string     `gorm:"type:text" json:"user_agent,omitempty"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (dr *DemoRequest) BeforeCreate(tx *gorm.DB) error {
	if dr.ID == "" {
		dr.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for DemoRequest model
func (DemoRequest) TableName() string {
	return "demo_requests"
}

// IsValidStatus checks if the status is valid
func IsValidStatus(status string) bool {
	validStatuses := []string{
		StatusNew,
		StatusContacted,
		StatusClosed,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
