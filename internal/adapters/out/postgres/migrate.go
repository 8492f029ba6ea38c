package postgres

import (
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/sessionrepo"
	"fulfillment/internal/adapters/out/postgres/workerrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in dependency order.
func Models() []any {
	return []any{
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.ItemDTO{},
		&invoicerepo.ReturnDTO{},
		&sessionrepo.SessionDTO{},
		&workerrepo.UserDTO{},
	}
}

// Migrate creates or updates the schema, including the partial unique indexes
// backing the session registry.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return dropLegacyIndexes(db)
}

// dropLegacyIndexes removes indexes earlier schema versions created that
// AutoMigrate never drops on its own.
func dropLegacyIndexes(db *gorm.DB) error {
	m := db.Migrator()
	if m.HasIndex(&invoicerepo.ItemDTO{}, "ux_invoice_items_code") {
		return m.DropIndex(&invoicerepo.ItemDTO{}, "ux_invoice_items_code")
	}
	return nil
}
