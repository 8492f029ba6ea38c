// Package workerrepo reads the worker directory from the users table owned by
// user administration.
package workerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
)

// UserDTO is the subset of the users table the fulfillment service reads.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(a ports.WorkerAccount, active bool) UserDTO {
	return UserDTO{
		ID:       a.ID.Google(),
		Email:    a.Email.String(),
		Name:     a.Name,
		Role:     string(a.Role),
		IsActive: active,
	}
}

func toDomain(dto UserDTO) (ports.WorkerAccount, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.WorkerAccount{}, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return ports.WorkerAccount{}, err
	}
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return ports.WorkerAccount{}, err
	}
	return ports.WorkerAccount{ID: id, Email: email, Name: dto.Name, Role: role}, nil
}
