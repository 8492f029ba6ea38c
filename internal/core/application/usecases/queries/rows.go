package queries

import (
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const returnViewColumns = `
	invoice_returns.id,
	invoices.invoice_no,
	invoices.customer_name,
	invoice_returns.reason,
	invoice_returns.returned_by,
	invoice_returns.section,
	invoice_returns.returned_at,
	invoice_returns.resolved_at,
	invoice_returns.resolved_by,
	invoice_returns.resolution_notes`

const sessionViewColumns = `
	sessions.id,
	sessions.invoice_no,
	invoices.customer_name,
	sessions.stage,
	sessions.status,
	sessions.worker_email,
	sessions.worker_name,
	sessions.start_time,
	sessions.end_time,
	sessions.notes,
	sessions.cancel_reason,
	sessions.delivery_type,
	sessions.courier_name,
	sessions.tracking_no`

// collect scans every row with scan and closes rows.
func collect[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func kernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}

func scanReturnView(rows *sql.Rows) (ReturnView, error) {
	var r ReturnView
	var id uuid.UUID
	err := rows.Scan(
		&id,
		&r.InvoiceNo,
		&r.CustomerName,
		&r.Reason,
		&r.ReturnedBy,
		&r.Section,
		&r.ReturnedAt,
		&r.ResolvedAt,
		&r.ResolvedBy,
		&r.ResolutionNotes,
	)
	if err != nil {
		return ReturnView{}, err
	}
	if r.ID, err = kernelID(id); err != nil {
		return ReturnView{}, err
	}
	return r, nil
}

func scanSessionView(rows *sql.Rows) (SessionView, error) {
	var s SessionView
	var id uuid.UUID
	var workerEmail, deliveryType sql.NullString
	err := rows.Scan(
		&id,
		&s.InvoiceNo,
		&s.CustomerName,
		&s.Stage,
		&s.Status,
		&workerEmail,
		&s.WorkerName,
		&s.StartTime,
		&s.EndTime,
		&s.Notes,
		&s.CancelReason,
		&deliveryType,
		&s.CourierName,
		&s.TrackingNo,
	)
	if err != nil {
		return SessionView{}, err
	}
	if s.ID, err = kernelID(id); err != nil {
		return SessionView{}, err
	}
	s.WorkerEmail = workerEmail.String
	s.DeliveryType = deliveryType.String
	if s.EndTime != nil {
		d := s.EndTime.Sub(s.StartTime).Truncate(time.Second)
		s.Duration = &d
	}
	return s, nil
}
