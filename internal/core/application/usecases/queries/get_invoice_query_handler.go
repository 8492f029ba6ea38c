package queries

import (
	"context"
	"database/sql"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler reads the invoice detail view.
//
// An invoice outside the actor's scope is reported as *errs.ForbiddenError, an
// unknown invoice number as *errs.ObjectNotFoundError.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (InvoiceDetail, error) {
	if err := query.Validate(); err != nil {
		return InvoiceDetail{}, err
	}
	db := h.db.WithContext(ctx)

	detail, id, err := h.loadHeader(db, query.invoiceNo)
	if err != nil {
		return InvoiceDetail{}, err
	}

	if !query.scope.AllowsAll() {
		var visible int64
		err = db.Table("invoices").
			Scopes(invoiceScope(query.scope, "invoices")).
			Where("invoices.id = ?", id).
			Count(&visible).Error
		if err != nil {
			return InvoiceDetail{}, err
		}
		if visible == 0 {
			return InvoiceDetail{}, errs.NewForbiddenError("view_invoice",
				fmt.Sprintf("invoice %s belongs to another user", query.invoiceNo))
		}
	}

	if detail.Items, err = h.loadItems(db, id); err != nil {
		return InvoiceDetail{}, err
	}

	returns, err := db.Table("invoice_returns").
		Select(returnViewColumns).
		Joins("JOIN invoices ON invoices.id = invoice_returns.invoice_id").
		Where("invoice_returns.invoice_id = ?", id).
		Order("invoice_returns.returned_at").
		Rows()
	if err != nil {
		return InvoiceDetail{}, err
	}
	if detail.Returns, err = collect(returns, scanReturnView); err != nil {
		return InvoiceDetail{}, err
	}

	sessions, err := db.Table("sessions").
		Select(sessionViewColumns).
		Joins("JOIN invoices ON invoices.id = sessions.invoice_id").
		Where("sessions.invoice_id = ?", id).
		Order("sessions.start_time").
		Rows()
	if err != nil {
		return InvoiceDetail{}, err
	}
	if detail.Sessions, err = collect(sessions, scanSessionView); err != nil {
		return InvoiceDetail{}, err
	}

	return detail, nil
}

func (h GetInvoiceQueryHandler) loadHeader(db *gorm.DB, invoiceNo string) (InvoiceDetail, uuid.UUID, error) {
	rows, err := db.Table("invoices").
		Select(invoiceSummaryColumns+`,
			invoices.customer_phone,
			invoices.customer_address,
			invoices.remarks`).
		Where("invoices.invoice_no = ?", invoiceNo).
		Limit(1).
		Rows()
	if err != nil {
		return InvoiceDetail{}, uuid.Nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return InvoiceDetail{}, uuid.Nil, err
		}
		return InvoiceDetail{}, uuid.Nil, errs.NewObjectNotFoundError("invoice", invoiceNo)
	}

	var d InvoiceDetail
	var id uuid.UUID
	err = rows.Scan(
		&id,
		&d.InvoiceNo,
		&d.InvoiceDate,
		&d.Status,
		&d.BillingStatus,
		&d.Priority,
		&d.CustomerCode,
		&d.CustomerName,
		&d.CustomerArea,
		&d.SalesmanName,
		&d.TotalAmount,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.CustomerPhone,
		&d.CustomerAddress,
		&d.Remarks,
	)
	if err != nil {
		return InvoiceDetail{}, uuid.Nil, err
	}
	if d.ID, err = kernelID(id); err != nil {
		return InvoiceDetail{}, uuid.Nil, err
	}
	return d, id, nil
}

func (h GetInvoiceQueryHandler) loadItems(db *gorm.DB, invoiceID uuid.UUID) ([]InvoiceItemView, error) {
	rows, err := db.Raw(`
		SELECT
			item_code,
			name,
			quantity,
			mrp,
			batch_no,
			expiry_date,
			shelf_location
		FROM invoice_items
		WHERE invoice_id = ?
		ORDER BY position
	`, invoiceID).Rows()
	if err != nil {
		return nil, err
	}

	return collect(rows, func(rows *sql.Rows) (InvoiceItemView, error) {
		var item InvoiceItemView
		err := rows.Scan(
			&item.ItemCode,
			&item.Name,
			&item.Quantity,
			&item.MRP,
			&item.BatchNo,
			&item.ExpiryDate,
			&item.ShelfLocation,
		)
		item.Amount = item.MRP.Mul(decimal.NewFromInt(int64(item.Quantity)))
		return item, err
	})
}
