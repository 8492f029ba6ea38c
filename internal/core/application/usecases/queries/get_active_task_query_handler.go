package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveTaskQueryHandler looks up what a worker is doing right now.
type GetActiveTaskQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveTaskQueryHandler(db *gorm.DB) GetActiveTaskQueryHandler {
	return GetActiveTaskQueryHandler{db: db}
}

// Handle returns nil when the worker has no open session. An actor asking about
// another worker without privilege gets *errs.ForbiddenError.
func (h GetActiveTaskQueryHandler) Handle(ctx context.Context, query GetActiveTaskQuery) (*ActiveTask, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.actor.RequireSelfOrPrivileged("view_active_task", query.worker); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).Table("sessions").
		Select(sessionViewColumns+`,
			invoices.status,
			invoices.priority,
			(SELECT COUNT(*) FROM invoice_items WHERE invoice_items.invoice_id = invoices.id)`).
		Joins("JOIN invoices ON invoices.id = sessions.invoice_id").
		Where("sessions.worker_email = ? AND sessions.end_time IS NULL", query.worker.String())
	if query.stage != "" {
		db = db.Where("sessions.stage = ?", query.stage.String())
	}

	rows, err := db.Order("sessions.start_time DESC").Limit(1).Rows()
	if err != nil {
		return nil, err
	}

	tasks, err := collect(rows, scanActiveTask)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	return &tasks[0], nil
}

func scanActiveTask(rows *sql.Rows) (ActiveTask, error) {
	var t ActiveTask
	var workerEmail, deliveryType sql.NullString
	var id uuid.UUID
	err := rows.Scan(
		&id,
		&t.Session.InvoiceNo,
		&t.Session.CustomerName,
		&t.Session.Stage,
		&t.Session.Status,
		&workerEmail,
		&t.Session.WorkerName,
		&t.Session.StartTime,
		&t.Session.EndTime,
		&t.Session.Notes,
		&t.Session.CancelReason,
		&deliveryType,
		&t.Session.CourierName,
		&t.Session.TrackingNo,
		&t.InvoiceStatus,
		&t.Priority,
		&t.ItemCount,
	)
	if err != nil {
		return ActiveTask{}, err
	}
	if t.Session.ID, err = kernelID(id); err != nil {
		return ActiveTask{}, err
	}
	t.Session.WorkerEmail = workerEmail.String
	t.Session.DeliveryType = deliveryType.String
	return t, nil
}
