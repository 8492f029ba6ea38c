package workerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkerDirectory implements WorkerDirectory on the users table.
type GormWorkerDirectory struct {
	db *gorm.DB
}

func NewGormWorkerDirectory(db *gorm.DB) *GormWorkerDirectory {
	return &GormWorkerDirectory{db: db}
}

// GetActiveWorker resolves a scanned e-mail. Disabled accounts are reported as not found.
func (d *GormWorkerDirectory) GetActiveWorker(ctx context.Context, email kernel.Email) (ports.WorkerAccount, error) {
	if email.IsZero() {
		return ports.WorkerAccount{}, errs.NewValueIsRequiredError("user_email")
	}

	var dto UserDTO
	err := d.db.WithContext(ctx).First(&dto, "email = ? AND is_active", email.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.WorkerAccount{}, errs.NewObjectNotFoundError("worker", email.String())
		}
		return ports.WorkerAccount{}, err
	}

	return toDomain(dto)
}

// Register inserts or refreshes a directory entry. It is the seed path for local
// environments and tests; production rows are written by user administration.
func (d *GormWorkerDirectory) Register(ctx context.Context, account ports.WorkerAccount, active bool) error {
	var emailErr error
	if account.Email.IsZero() {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	_, roleErr := access.ParseRole(string(account.Role))
	if err := errors.Join(account.ID.Validate(), emailErr, roleErr); err != nil {
		return err
	}

	dto := fromDomain(account, active)
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "is_active"}),
	}).Create(&dto).Error
}
