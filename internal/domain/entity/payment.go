package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/insights-api/internal/domain/enum"
)

// PaymentRequest asks a party to pay, or records a request to pay a party
type PaymentRequest struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name               string          `gorm:"size:140;uniqueIndex;not null" json:"name"`
	DocStatus          enum.DocStatus  `gorm:"default:0;index" json:"doc_status"`
	PartyType          enum.PartyType  `gorm:"size:40;index:idx_payment_requests_party;not null" json:"party_type"`
	Party              string          `gorm:"size:140;index:idx_payment_requests_party;not null" json:"party"`
	PaymentRequestType string          `gorm:"size:40" json:"payment_request_type"`
	TransactionDate    time.Time       `gorm:"type:date;index;not null" json:"transaction_date"`
	ReferenceDoctype   string          `gorm:"size:140" json:"reference_doctype"`
	ReferenceName      string          `gorm:"size:140" json:"reference_name"`
	GrandTotal         decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"grand_total"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new payment request
func (p *PaymentRequest) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentRequest model
func (PaymentRequest) TableName() string {
	return "payment_requests"
}

// PaymentEntry records money received from or paid to a party
type PaymentEntry struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name              string          `gorm:"size:140;uniqueIndex;not null" json:"name"`
	DocStatus         enum.DocStatus  `gorm:"default:0;index" json:"doc_status"`
	PartyType         enum.PartyType  `gorm:"size:40;index:idx_payment_entries_party;not null" json:"party_type"`
	Party             string          `gorm:"size:140;index:idx_payment_entries_party;not null" json:"party"`
	PaymentType       string          `gorm:"size:40" json:"payment_type"`
	PostingDate       time.Time       `gorm:"type:date;index;not null" json:"posting_date"`
	ModeOfPayment     string          `gorm:"size:140" json:"mode_of_payment"`
	UnallocatedAmount decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"unallocated_amount"`
	PaidAmount        decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"paid_amount"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new payment entry
func (p *PaymentEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentEntry model
func (PaymentEntry) TableName() string {
	return "payment_entries"
}
