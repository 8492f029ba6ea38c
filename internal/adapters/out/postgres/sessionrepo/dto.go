// Package sessionrepo persists work sessions. The sessions table carries two
// partial unique indexes that make the session registry rules atomic:
// one open session per worker and one open session per invoice and stage.
package sessionrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting sessions.
type SessionDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	InvoiceID    uuid.UUID  `gorm:"type:uuid;not null;index;index:ux_sessions_active_invoice_stage,unique,where:end_time IS NULL"`
	InvoiceNo    string     `gorm:"type:varchar(64);not null;index"`
	Stage        string     `gorm:"type:varchar(16);not null;index:ux_sessions_active_invoice_stage,unique,where:end_time IS NULL"`
	WorkerEmail  *string    `gorm:"type:varchar(320);index;index:ux_sessions_active_worker,unique,where:end_time IS NULL AND worker_email IS NOT NULL"`
	WorkerName   string     `gorm:"type:varchar(255)"`
	Status       string     `gorm:"type:varchar(16);not null"`
	StartTime    time.Time  `gorm:"not null;index"`
	EndTime      *time.Time `gorm:"index"`
	Notes        string     `gorm:"type:text"`
	CancelReason string     `gorm:"type:text"`
	DeliveryType *string    `gorm:"type:varchar(16)"`
	CourierName  string     `gorm:"type:varchar(255)"`
	TrackingNo   string     `gorm:"type:varchar(128)"`
}

func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(s *session.Session) SessionDTO {
	dto := SessionDTO{
		ID:           s.ID().Google(),
		InvoiceID:    s.InvoiceID().Google(),
		InvoiceNo:    s.InvoiceNo(),
		Stage:        s.Stage().String(),
		Status:       s.Status().String(),
		StartTime:    s.StartTime(),
		EndTime:      s.EndTime(),
		Notes:        s.Notes(),
		CancelReason: s.CancelReason(),
		CourierName:  s.Delivery().CourierName,
		TrackingNo:   s.Delivery().TrackingNo,
	}
	if w := s.Worker(); w != nil {
		email := w.Email.String()
		dto.WorkerEmail = &email
		dto.WorkerName = w.Name
	}
	if dt := s.Delivery().Type; dt != "" {
		raw := dt.String()
		dto.DeliveryType = &raw
	}
	return dto
}

func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernel.UUIDFromGoogle(dto.InvoiceID)
	if err != nil {
		return nil, err
	}
	stage, err := session.ParseStage(dto.Stage)
	if err != nil {
		return nil, err
	}
	status, err := session.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var worker *session.Worker
	if dto.WorkerEmail != nil {
		email, emailErr := kernel.NewEmail(*dto.WorkerEmail)
		if emailErr != nil {
			return nil, emailErr
		}
		worker = &session.Worker{Email: email, Name: dto.WorkerName}
	}

	delivery := session.DeliveryDetails{CourierName: dto.CourierName, TrackingNo: dto.TrackingNo}
	if dto.DeliveryType != nil {
		if delivery.Type, err = session.ParseDeliveryType(*dto.DeliveryType); err != nil {
			return nil, err
		}
	}

	return session.RestoreSession(session.State{
		ID:           id,
		InvoiceID:    invoiceID,
		InvoiceNo:    dto.InvoiceNo,
		Stage:        stage,
		Worker:       worker,
		Status:       status,
		StartTime:    dto.StartTime,
		EndTime:      dto.EndTime,
		Notes:        dto.Notes,
		CancelReason: dto.CancelReason,
		Delivery:     delivery,
	}), nil
}
