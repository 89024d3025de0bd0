package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/insights-api/internal/domain/enum"
)

// DocumentHeader holds the columns shared by every itemized transaction header.
// Embedded by value so its fields map onto the parent table.
type DocumentHeader struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `gorm:"size:140;uniqueIndex;not null" json:"name"`
	DocStatus  enum.DocStatus  `gorm:"default:0;index" json:"doc_status"`
	Total      decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"total"`
	GrandTotal decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"grand_total"`
	TotalQty   decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"total_qty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new document
func (h *DocumentHeader) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// LineItem holds the columns shared by every document line
type LineItem struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Parent   string          `gorm:"size:140;index;not null" json:"parent"`
	ItemCode string          `gorm:"size:140;index;not null" json:"item_code"`
	ItemName string          `gorm:"size:255" json:"item_name"`
	Qty      decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"qty"`
	Rate     decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"rate"`
	Amount   decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"amount"`
}

// BeforeCreate generates a UUID before creating a new line
func (l *LineItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
