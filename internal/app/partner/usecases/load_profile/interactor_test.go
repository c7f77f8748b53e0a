package load_profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/domain"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/store"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
)

type stubGateway struct {
	profile wire.Object
	err     error
}

func (g *stubGateway) FetchProfile(context.Context, string, string) (wire.Object, error) {
	return g.profile, g.err
}

func (g *stubGateway) SubmitUpdate(context.Context, *contracts.UpdateRequest) (*contracts.TaskStatus, error) {
	return nil, errors.New("not used")
}

func TestInteractor_Execute(t *testing.T) {
	t.Run("initializes the store", func(t *testing.T) {
		g := &stubGateway{profile: wire.Object{
			wire.PartnerID: "p-9",
			wire.Goals:     []any{"Long-term", "bogus"},
		}}
		s := store.New(zap.NewNop())

		p, err := NewInteractor(g, nil).Execute(context.Background(), &Request{Store: s, PartnerID: "p-9", UserID: "u-1"})

		require.NoError(t, err)
		assert.Equal(t, "p-9", p.ID)
		assert.Equal(t, store.StatusReady, s.Status())
		assert.Equal(t, []domain.Goal{domain.GoalLongTerm}, s.Draft().Goals)
		assert.Equal(t, s.Draft(), s.Saved())
	})

	t.Run("falls back to the requested id", func(t *testing.T) {
		s := store.New(nil)
		p, err := NewInteractor(&stubGateway{profile: wire.Object{}}, nil).
			Execute(context.Background(), &Request{Store: s, PartnerID: "p-1"})

		require.NoError(t, err)
		assert.Equal(t, "p-1", p.ID)
		assert.Equal(t, "p-1", s.Saved().ID)
	})

	t.Run("fetch failure leaves store uninitialized", func(t *testing.T) {
		s := store.New(nil)
		_, err := NewInteractor(&stubGateway{err: domain.ErrProfileNotFound}, nil).
			Execute(context.Background(), &Request{Store: s, PartnerID: "p-1"})

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.Equal(t, store.StatusUninitialized, s.Status())
	})

	t.Run("requires partner id and store", func(t *testing.T) {
		uc := NewInteractor(&stubGateway{}, nil)
		_, err := uc.Execute(context.Background(), &Request{Store: store.New(nil)})
		assert.Error(t, err)
		_, err = uc.Execute(context.Background(), &Request{PartnerID: "p-1"})
		assert.Error(t, err)
	})
}
