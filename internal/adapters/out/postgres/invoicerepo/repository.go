package invoicerepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice with its items. The unique index on invoice_no turns a
// second import of the same number into *errs.AlreadyExistsError.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("invoice_no", aggregate.InvoiceNo(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing invoice. Items are replaced as a whole, returns are
// upserted by id.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "invoice_no", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", aggregate.InvoiceNo())
	}

	if err := db.Where("invoice_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	if len(dto.Returns) > 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"resolved_at", "resolved_by", "resolution_notes"}),
		}).Create(&dto.Returns).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNo retrieves an invoice by its invoice number.
func (r *GormInvoiceRepository) GetByNo(ctx context.Context, invoiceNo string) (*invoice.Invoice, error) {
	return r.load(ctx, r.db.WithContext(ctx), invoiceNo)
}

// GetByNoForUpdate retrieves an invoice and holds a row lock on it until the
// surrounding transaction ends.
func (r *GormInvoiceRepository) GetByNoForUpdate(ctx context.Context, invoiceNo string) (*invoice.Invoice, error) {
	return r.load(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), invoiceNo)
}

func (r *GormInvoiceRepository) load(ctx context.Context, db *gorm.DB, invoiceNo string) (*invoice.Invoice, error) {
	invoiceNo = strings.TrimSpace(invoiceNo)
	if invoiceNo == "" {
		return nil, errs.NewValueIsRequiredError("invoice_no")
	}

	var dto InvoiceDTO
	if err := db.First(&dto, "invoice_no = ?", invoiceNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", invoiceNo)
		}
		return nil, err
	}

	children := r.db.WithContext(ctx)
	if err := children.Where("invoice_id = ?", dto.ID).Order("position").Find(&dto.Items).Error; err != nil {
		return nil, err
	}
	if err := children.Where("invoice_id = ?", dto.ID).Order("returned_at").Find(&dto.Returns).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
