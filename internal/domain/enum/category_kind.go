package enum

import "encoding/json"

// CategoryKind classifies a document category by the shape of its report
type CategoryKind string

const (
	// CategoryKindOrder is the primary order document (sales/purchase order)
	CategoryKindOrder CategoryKind = "order"
	// CategoryKindFulfillment is the delivery note or purchase receipt
	CategoryKindFulfillment CategoryKind = "fulfillment"
	// CategoryKindBilling is the sales or purchase invoice
	CategoryKindBilling CategoryKind = "billing"
	// CategoryKindPaymentRequest is a payment request raised against the party
	CategoryKindPaymentRequest CategoryKind = "payment_request"
	// CategoryKindPaymentEntry is a recorded payment
	CategoryKindPaymentEntry CategoryKind = "payment_entry"
)

// AllCategoryKinds lists every kind in display order
func AllCategoryKinds() []CategoryKind {
	return []CategoryKind{
		CategoryKindOrder,
		CategoryKindFulfillment,
		CategoryKindBilling,
		CategoryKindPaymentRequest,
		CategoryKindPaymentEntry,
	}
}

func (k CategoryKind) String() string {
	return string(k)
}

// IsItemized reports whether documents of this kind carry line items and a pre-tax total
func (k CategoryKind) IsItemized() bool {
	return k == CategoryKindOrder || k == CategoryKindFulfillment || k == CategoryKindBilling
}

// IsPayment reports whether documents of this kind are payments keyed by party_type
func (k CategoryKind) IsPayment() bool {
	return k == CategoryKindPaymentRequest || k == CategoryKindPaymentEntry
}

func (k CategoryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(k))
}
