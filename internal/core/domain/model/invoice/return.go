package invoice

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Section names the fulfillment stage an invoice was pulled from when returned to billing.
type Section string

const (
	SectionPicking Section = "picking"
	SectionPacking Section = "packing"
)

func sectionOf(s Status) Section {
	if s == StatusPacking {
		return SectionPacking
	}
	return SectionPicking
}

// Return records one return-to-billing of an invoice. It is immutable after
// creation except for the resolution recorded when billing corrects the invoice.
type Return struct {
	id              kernel.UUID
	reason          string
	returnedBy      string
	section         Section
	returnedAt      time.Time
	resolvedAt      *time.Time
	resolvedBy      string
	resolutionNotes string
}

// RestoreReturn rebuilds a Return from persistence without re-running business checks.
func RestoreReturn(
	id kernel.UUID,
	reason, returnedBy string,
	section Section,
	returnedAt time.Time,
	resolvedAt *time.Time,
	resolvedBy, resolutionNotes string,
) *Return {
	return &Return{
		id:              id,
		reason:          reason,
		returnedBy:      returnedBy,
		section:         section,
		returnedAt:      returnedAt,
		resolvedAt:      resolvedAt,
		resolvedBy:      resolvedBy,
		resolutionNotes: resolutionNotes,
	}
}

func (r *Return) ID() kernel.UUID         { return r.id }
func (r *Return) Reason() string          { return r.reason }
func (r *Return) ReturnedBy() string      { return r.returnedBy }
func (r *Return) Section() Section        { return r.section }
func (r *Return) ReturnedAt() time.Time   { return r.returnedAt }
func (r *Return) ResolvedAt() *time.Time  { return r.resolvedAt }
func (r *Return) ResolvedBy() string      { return r.resolvedBy }
func (r *Return) ResolutionNotes() string { return r.resolutionNotes }

// IsResolved reports whether billing has corrected the invoice since this return.
func (r *Return) IsResolved() bool {
	return r.resolvedAt != nil
}

func (r *Return) resolve(by, notes string, at time.Time) {
	r.resolvedAt = &at
	r.resolvedBy = by
	r.resolutionNotes = notes
}
