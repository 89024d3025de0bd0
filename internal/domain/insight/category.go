package insight

import "github.com/sangkips/insights-api/internal/domain/enum"

// Category describes one document category tracked for a party type
type Category struct {
	Key   string            `json:"key"`
	Label string            `json:"label"`
	Kind  enum.CategoryKind `json:"kind"`

	// Store metadata. These are static identifiers, never user input.
	Table              string `json:"-"`
	ItemTable          string `json:"-"`
	PartyColumn        string `json:"-"`
	DateColumn         string `json:"-"`
	CompletedQtyColumn string `json:"-"`
}

// HasTaxableTotal reports whether the category exposes a pre-tax total
func (c Category) HasTaxableTotal() bool {
	return c.Kind.IsItemized()
}

// TracksPayments reports whether the category reports paid and pending amounts
func (c Category) TracksPayments() bool {
	return c.Kind == enum.CategoryKindBilling
}

var customerCategories = []Category{
	{
		Key: "sales_order", Label: "Sales Order", Kind: enum.CategoryKindOrder,
		Table: "sales_orders", ItemTable: "sales_order_items",
		PartyColumn: "customer", DateColumn: "transaction_date", CompletedQtyColumn: "delivered_qty",
	},
	{
		Key: "delivery_note", Label: "Delivery Note", Kind: enum.CategoryKindFulfillment,
		Table: "delivery_notes", ItemTable: "delivery_note_items",
		PartyColumn: "customer", DateColumn: "posting_date",
	},
	{
		Key: "sales_invoice", Label: "Sales Invoice", Kind: enum.CategoryKindBilling,
		Table: "sales_invoices", ItemTable: "sales_invoice_items",
		PartyColumn: "customer", DateColumn: "posting_date",
	},
	{
		Key: "payment_request", Label: "Payment Request", Kind: enum.CategoryKindPaymentRequest,
		Table: "payment_requests", PartyColumn: "party", DateColumn: "transaction_date",
	},
	{
		Key: "payment_entry", Label: "Payment Entry", Kind: enum.CategoryKindPaymentEntry,
		Table: "payment_entries", PartyColumn: "party", DateColumn: "posting_date",
	},
}

var supplierCategories = []Category{
	{
		Key: "purchase_order", Label: "Purchase Order", Kind: enum.CategoryKindOrder,
		Table: "purchase_orders", ItemTable: "purchase_order_items",
		PartyColumn: "supplier", DateColumn: "transaction_date", CompletedQtyColumn: "received_qty",
	},
	{
		Key: "purchase_receipt", Label: "Purchase Receipt", Kind: enum.CategoryKindFulfillment,
		Table: "purchase_receipts", ItemTable: "purchase_receipt_items",
		PartyColumn: "supplier", DateColumn: "posting_date",
	},
	{
		Key: "purchase_invoice", Label: "Purchase Invoice", Kind: enum.CategoryKindBilling,
		Table: "purchase_invoices", ItemTable: "purchase_invoice_items",
		PartyColumn: "supplier", DateColumn: "posting_date",
	},
	{
		Key: "payment_request", Label: "Payment Request", Kind: enum.CategoryKindPaymentRequest,
		Table: "payment_requests", PartyColumn: "party", DateColumn: "transaction_date",
	},
	{
		Key: "payment_entry", Label: "Payment Entry", Kind: enum.CategoryKindPaymentEntry,
		Table: "payment_entries", PartyColumn: "party", DateColumn: "posting_date",
	},
}
