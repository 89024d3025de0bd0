package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/insights-api/internal/domain/entity"
	"github.com/sangkips/insights-api/internal/domain/enum"
)

// SeedDemoData inserts a small submitted dataset for local exploration.
// Documents are dated relative to today so the named ranges pick them up.
// Seeding is skipped when the registry already holds the demo customer.
func SeedDemoData(ctx context.Context, db *gorm.DB, today time.Time) error {
	logger := zerolog.Ctx(ctx)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }
	d := decimal.NewFromInt
	m := decimal.RequireFromString

	phone := "+254700000001"
	email := "accounts@acme.test"

	var existing int64
	if err := db.WithContext(ctx).Model(&entity.Customer{}).Where("code = ?", "CUST-0001").Count(&existing).Error; err != nil {
		return fmt.Errorf("check demo data: %w", err)
	}
	if existing > 0 {
		logger.Info().Msg("demo data already present, skipping seed")
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		records := []interface{}{
			&entity.Customer{Code: "CUST-0001", CustomerName: "Acme Ltd", CustomerGroup: "Commercial", MobileNo: &phone, EmailID: &email},
			&entity.Customer{Code: "CUST-0002", CustomerName: "Quiet Traders", CustomerGroup: "Retail"},
			&entity.Supplier{Code: "SUP-0001", SupplierName: "Steel Co", SupplierGroup: "Raw Material"},

			&entity.SalesOrder{
				DocumentHeader: entity.DocumentHeader{
					Name: "SO-0001", DocStatus: enum.DocStatusSubmitted,
					Total: d(70), GrandTotal: m("81.2"), TotalQty: d(5),
				},
				Customer:        "CUST-0001",
				TransactionDate: day(-3),
				Items: []entity.SalesOrderItem{
					{LineItem: entity.LineItem{ItemCode: "ITEM-A", ItemName: "Widget", Qty: d(3), Rate: d(10), Amount: d(30)}, DeliveredQty: d(2)},
					{LineItem: entity.LineItem{ItemCode: "ITEM-B", ItemName: "Gadget", Qty: d(2), Rate: d(20), Amount: d(40)}, DeliveredQty: d(2)},
				},
			},
			&entity.SalesOrder{
				DocumentHeader: entity.DocumentHeader{
					Name: "SO-0002", DocStatus: enum.DocStatusDraft,
					Total: d(999), GrandTotal: d(999), TotalQty: d(1),
				},
				Customer:        "CUST-0001",
				TransactionDate: day(-2),
			},
			&entity.SalesInvoice{
				DocumentHeader: entity.DocumentHeader{
					Name: "SINV-0001", DocStatus: enum.DocStatusSubmitted,
					Total: d(70), GrandTotal: m("81.2"), TotalQty: d(5),
				},
				Customer:          "CUST-0001",
				PostingDate:       day(-1),
				OutstandingAmount: m("31.2"),
				Items: []entity.SalesInvoiceItem{
					{LineItem: entity.LineItem{ItemCode: "ITEM-A", ItemName: "Widget", Qty: d(3), Rate: d(10), Amount: d(30)}},
					{LineItem: entity.LineItem{ItemCode: "ITEM-B", ItemName: "Gadget", Qty: d(2), Rate: d(20), Amount: d(40)}},
				},
			},
			&entity.PaymentEntry{
				Name: "PE-0001", DocStatus: enum.DocStatusSubmitted,
				PartyType: enum.PartyTypeCustomer, Party: "CUST-0001",
				PaymentType: "Receive", PostingDate: day(-1), ModeOfPayment: "Bank Transfer",
				PaidAmount: d(50),
			},
			&entity.PurchaseOrder{
				DocumentHeader: entity.DocumentHeader{
					Name: "PO-0001", DocStatus: enum.DocStatusSubmitted,
					Total: d(1000), GrandTotal: d(1160), TotalQty: d(100),
				},
				Supplier:        "SUP-0001",
				TransactionDate: day(-20),
				Items: []entity.PurchaseOrderItem{
					{LineItem: entity.LineItem{ItemCode: "RM-STEEL", ItemName: "Steel bar", Qty: d(100), Rate: d(10), Amount: d(1000)}, ReceivedQty: d(60)},
				},
			},
			&entity.PaymentRequest{
				Name: "PR-0001", DocStatus: enum.DocStatusSubmitted,
				PartyType: enum.PartyTypeSupplier, Party: "SUP-0001",
				PaymentRequestType: "Outward", TransactionDate: day(-10),
				ReferenceDoctype: "Purchase Order", ReferenceName: "PO-0001",
				GrandTotal: d(1160),
			},
		}

		for _, record := range records {
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("seed %T: %w", record, err)
			}
		}

		logger.Info().Int("records", len(records)).Msg("demo data seeded")
		return nil
	})
}
