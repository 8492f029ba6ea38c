package sessionrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Add saves a new session. A violation of either partial unique index means a
// concurrent start won the race and is reported as a state conflict.
func (r *GormSessionRepository) Add(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause(
				"session_active",
				"invoice_no",
				"an active session already exists for this worker or for "+s.InvoiceNo()+" "+s.Stage().String(),
				err,
			)
		}
		return err
	}
	return nil
}

// Update saves an existing session.
func (r *GormSessionRepository) Update(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).Model(&SessionDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", s.ID().String())
	}
	return nil
}

// GetActiveByInvoiceStage retrieves the open session of stage on an invoice.
func (r *GormSessionRepository) GetActiveByInvoiceStage(
	ctx context.Context,
	invoiceID kernel.UUID,
	stage session.Stage,
) (*session.Session, error) {
	if err := invoiceID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Where("invoice_id = ? AND stage = ? AND end_time IS NULL", invoiceID.Google(), stage.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active "+stage.String()+" session", invoiceID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByWorker retrieves the worker's open session of any stage.
func (r *GormSessionRepository) GetActiveByWorker(ctx context.Context, worker kernel.Email) (*session.Session, error) {
	if worker.IsZero() {
		return nil, errs.NewValueIsRequiredError("user_email")
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Where("worker_email = ? AND end_time IS NULL", worker.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active session", worker.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActiveStartedBefore retrieves open sessions that started before the given instant, oldest first.
func (r *GormSessionRepository) ListActiveStartedBefore(ctx context.Context, before time.Time) ([]*session.Session, error) {
	var dtos []SessionDTO
	if err := r.db.WithContext(ctx).
		Where("end_time IS NULL AND start_time < ?", before).
		Order("start_time").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	sessions := make([]*session.Session, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
