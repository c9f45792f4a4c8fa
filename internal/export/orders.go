// Package export renders admin lists as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	"github.com/xuri/excelize/v2"
)

const (
	ordersSheet = "Orders"
	timeLayout  = "2006-01-02 15:04"
)

var orderHeader = []any{
	"Order number", "Status", "Customer", "Recipient", "Phone", "Address",
	"Items", "Total", "Shipping fee", "Final amount", "Carrier", "Tracking number", "Created at",
}

// WriteOrders writes the orders as an XLSX workbook with one row per order.
func WriteOrders(w io.Writer, orders []entities.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(ordersSheet, "A1", &orderHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{
			o.OrderNumber,
			o.Status.Display().Label,
			o.CustomerID,
			o.ShippingAddress.Recipient,
			o.ShippingAddress.Phone,
			joinAddress(o.ShippingAddress),
			itemsSummary(o.Items),
			o.TotalAmount,
			o.ShippingFee,
			o.FinalAmount,
			o.ShippingInfo.Carrier,
			o.ShippingInfo.TrackingNumber,
			o.CreatedAt.Format(timeLayout),
		}
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(ordersSheet, "A", "M", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func joinAddress(a entities.ShippingAddress) string {
	if a.Address2 == "" {
		return a.Address1
	}
	return a.Address1 + " " + a.Address2
}

func itemsSummary(items []entities.OrderItem) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s x%d", items[0].Name, items[0].Quantity)
	default:
		return fmt.Sprintf("%s x%d and %d more", items[0].Name, items[0].Quantity, len(items)-1)
	}
}
