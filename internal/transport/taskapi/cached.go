package taskapi

import (
	"context"
	"time"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
	"github.com/light-bringer/partner-profile-service/internal/pkg/readcache"
)

// CachedGateway serves profile reads from a TTL cache. Updates always go
// to the remote service.
type CachedGateway struct {
	next  contracts.ProfileGateway
	cache *readcache.Cache[wire.Object]
}

// NewCachedGateway wraps next with a cache of size entries.
func NewCachedGateway(next contracts.ProfileGateway, size int, ttl time.Duration, clk clock.Clock) (*CachedGateway, error) {
	cache, err := readcache.New[wire.Object](size, ttl, clk)
	if err != nil {
		return nil, err
	}
	return &CachedGateway{next: next, cache: cache}, nil
}

// FetchProfile returns a private copy of the cached profile, loading it on
// a miss.
func (g *CachedGateway) FetchProfile(ctx context.Context, partnerID, userID string) (wire.Object, error) {
	obj, err := g.cache.GetOrLoad(ctx, cacheKey(partnerID, userID), func(ctx context.Context) (wire.Object, error) {
		return g.next.FetchProfile(ctx, partnerID, userID)
	})
	if err != nil {
		return nil, err
	}
	return copyObject(obj), nil
}

func (g *CachedGateway) SubmitUpdate(ctx context.Context, req *contracts.UpdateRequest) (*contracts.TaskStatus, error) {
	return g.next.SubmitUpdate(ctx, req)
}

// Invalidate drops the cached profile for the pair.
func (g *CachedGateway) Invalidate(partnerID, userID string) {
	g.cache.Remove(cacheKey(partnerID, userID))
}

func cacheKey(partnerID, userID string) string {
	return partnerID + "\x00" + userID
}

func copyObject(in wire.Object) wire.Object {
	if in == nil {
		return nil
	}
	out := make(wire.Object, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyObject(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

var (
	_ contracts.ProfileGateway   = (*CachedGateway)(nil)
	_ contracts.CacheInvalidator = (*CachedGateway)(nil)
)
