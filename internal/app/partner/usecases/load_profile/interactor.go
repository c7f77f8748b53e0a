package load_profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/store"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
)

// Request identifies the profile to load and the session store to fill.
type Request struct {
	Store     *store.Store
	PartnerID string
	UserID    string
}

// Interactor handles the load profile use case.
type Interactor struct {
	gateway contracts.ProfileGateway
	logger  *zap.Logger
}

// NewInteractor creates a new load profile interactor.
func NewInteractor(gateway contracts.ProfileGateway, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{gateway: gateway, logger: logger}
}

// Execute fetches the profile, converts it to the domain model and
// initializes the store with it. The loaded profile is returned.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.PartnerProfile, error) {
	if req == nil || req.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if req.PartnerID == "" {
		return nil, fmt.Errorf("partner ID is required")
	}

	raw, err := i.gateway.FetchProfile(ctx, req.PartnerID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partner profile: %w", err)
	}

	profile := wire.ToDomain(raw)
	if profile.ID == "" {
		profile.ID = req.PartnerID
	}
	req.Store.Initialize(profile)

	i.logger.Debug("partner profile loaded",
		zap.String("partner_id", req.PartnerID),
		zap.Int("wire_keys", len(raw)))
	return profile, nil
}
