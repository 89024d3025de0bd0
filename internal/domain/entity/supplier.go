package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a supplier in the party registry
type Supplier struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code          string         `gorm:"size:140;uniqueIndex;not null" json:"code"`
	SupplierName  string         `gorm:"size:255;not null" json:"supplier_name"`
	SupplierGroup string         `gorm:"size:140;index" json:"supplier_group"`
	MobileNo      *string        `gorm:"size:50" json:"mobile_no,omitempty"`
	EmailID       *string        `gorm:"size:255" json:"email_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
