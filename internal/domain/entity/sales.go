package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder is a customer order
type SalesOrder struct {
	DocumentHeader
	Customer        string           `gorm:"size:140;index;not null" json:"customer"`
	TransactionDate time.Time        `gorm:"type:date;index;not null" json:"transaction_date"`
	Items           []SalesOrderItem `gorm:"foreignKey:Parent;references:Name" json:"items,omitempty"`
}

// TableName returns the table name for the SalesOrder model
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// SalesOrderItem is a line of a sales order
type SalesOrderItem struct {
	LineItem
	DeliveredQty decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"delivered_qty"`
}

// TableName returns the table name for the SalesOrderItem model
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}

// DeliveryNote records goods shipped to a customer
type DeliveryNote struct {
	DocumentHeader
	Customer    string             `gorm:"size:140;index;not null" json:"customer"`
	PostingDate time.Time          `gorm:"type:date;index;not null" json:"posting_date"`
	Items       []DeliveryNoteItem `gorm:"foreignKey:Parent;references:Name" json:"items,omitempty"`
}

// TableName returns the table name for the DeliveryNote model
func (DeliveryNote) TableName() string {
	return "delivery_notes"
}

// DeliveryNoteItem is a line of a delivery note
type DeliveryNoteItem struct {
	LineItem
}

// TableName returns the table name for the DeliveryNoteItem model
func (DeliveryNoteItem) TableName() string {
	return "delivery_note_items"
}

// SalesInvoice bills a customer
type SalesInvoice struct {
	DocumentHeader
	Customer          string             `gorm:"size:140;index;not null" json:"customer"`
	PostingDate       time.Time          `gorm:"type:date;index;not null" json:"posting_date"`
	OutstandingAmount decimal.Decimal    `gorm:"type:numeric(18,6);default:0" json:"outstanding_amount"`
	Items             []SalesInvoiceItem `gorm:"foreignKey:Parent;references:Name" json:"items,omitempty"`
}

// TableName returns the table name for the SalesInvoice model
func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// SalesInvoiceItem is a line of a sales invoice
type SalesInvoiceItem struct {
	LineItem
}

// TableName returns the table name for the SalesInvoiceItem model
func (SalesInvoiceItem) TableName() string {
	return "sales_invoice_items"
}
