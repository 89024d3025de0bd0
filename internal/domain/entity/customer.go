package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer in the party registry
type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code          string         `gorm:"size:140;uniqueIndex;not null" json:"code"`
	CustomerName  string         `gorm:"size:255;not null" json:"customer_name"`
	CustomerGroup string         `gorm:"size:140;index" json:"customer_group"`
	MobileNo      *string        `gorm:"size:50" json:"mobile_no,omitempty"`
	EmailID       *string        `gorm:"size:255" json:"email_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
