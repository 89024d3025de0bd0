package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is an order placed with a supplier
type PurchaseOrder struct {
	DocumentHeader
	Supplier        string              `gorm:"size:140;index;not null" json:"supplier"`
	TransactionDate time.Time           `gorm:"type:date;index;not null" json:"transaction_date"`
	Items           []PurchaseOrderItem `gorm:"foreignKey:Parent;references:Name" json:"items,omitempty"`
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is a line of a purchase order
type PurchaseOrderItem struct {
	LineItem
	ReceivedQty decimal.Decimal `gorm:"type:numeric(18,6);default:0" json:"received_qty"`
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// PurchaseReceipt records goods received from a supplier
type PurchaseReceipt struct {
	DocumentHeader
	Supplier    string                `gorm:"size:140;index;not null" json:"supplier"`
	PostingDate time.Time             `gorm:"type:date;index;not null" json:"posting_date"`
	Items       []PurchaseReceiptItem `gorm:"foreignKey:Parent;references:Name" json:"items,omitempty"`
}

// TableName returns the table name for the PurchaseReceipt model
func (PurchaseReceipt) TableName() string {
	return "purchase_receipts"
}

// PurchaseReceiptItem is a line of a purchase receipt
type PurchaseReceiptItem struct {
	LineItem
}

// TableName returns the table name for the PurchaseReceiptItem model
func (PurchaseReceiptItem) TableName() string {
	return "purchase_receipt_items"
}

// PurchaseInvoice is a supplier bill
type PurchaseInvoice struct {
	DocumentHeader
	Supplier          string                `gorm:"size:140;index;not null" json:"supplier"`
	PostingDate       time.Time             `gorm:"type:date;index;not null" json:"posting_date"`
	OutstandingAmount decimal.Decimal       `gorm:"type:numeric(18,6);default:0" json:"outstanding_amount"`
	Items             []PurchaseInvoiceItem `gorm:"foreignKey:Parent;references:Name" json:"items,omitempty"`
}

// TableName returns the table name for the PurchaseInvoice model
func (PurchaseInvoice) TableName() string {
	return "purchase_invoices"
}

// PurchaseInvoiceItem is a line of a purchase invoice
type PurchaseInvoiceItem struct {
	LineItem
}

// TableName returns the table name for the PurchaseInvoiceItem model
func (PurchaseInvoiceItem) TableName() string {
	return "purchase_invoice_items"
}
