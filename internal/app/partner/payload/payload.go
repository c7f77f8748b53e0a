// Package payload builds the outgoing wire payload for a profile save.
package payload

import (
	"fmt"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
)

// Strategy names accepted by ForStrategy.
const (
	StrategyFull    = "full"
	StrategyChanged = "changed"
)

// Builder turns the draft and saved profiles into the wire payload sent
// with partner_profile_update.
type Builder interface {
	Build(draft, saved *domain.PartnerProfile) wire.Object
}

// FullMerge sends the saved profile overlaid with the draft.
type FullMerge struct{}

func (FullMerge) Build(draft, saved *domain.PartnerProfile) wire.Object {
	return wire.ToWire(draft, saved)
}

// ChangedFields sends only the fields that differ from saved, together
// with the companion provenance flag of each changed field.
type ChangedFields struct{}

func (ChangedFields) Build(draft, saved *domain.PartnerProfile) wire.Object {
	diff := domain.ComputeProfileDiff(draft, saved)
	fields := diff.Fields()
	for _, f := range diff.Fields() {
		if flag, ok := domain.CompanionFlag(f); ok && !diff.Has(flag) {
			fields = append(fields, flag)
		}
	}
	return wire.FieldsToWire(draft, fields)
}

// ForStrategy returns the builder registered under name. An empty name
// selects the full merge.
func ForStrategy(name string) (Builder, error) {
	switch name {
	case "", StrategyFull:
		return FullMerge{}, nil
	case StrategyChanged:
		return ChangedFields{}, nil
	default:
		return nil, fmt.Errorf("unknown payload strategy %q", name)
	}
}
