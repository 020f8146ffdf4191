package passport

import (
	"context"
	"fmt"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/user"
	"github.com/openfpl/fantasy-backend/internal/platform/cache"
	"github.com/openfpl/fantasy-backend/internal/usecase"
)

// CachedVerifier keeps verified principals for a short TTL so hot tokens do
// not hit the identity service on every request. Rejections are never cached.
type CachedVerifier struct {
	client *Client
	store  *cache.Store
}

func NewCachedVerifier(client *Client, ttl time.Duration) *CachedVerifier {
	return &CachedVerifier{
		client: client,
		store:  cache.NewStore(ttl),
	}
}

func (v *CachedVerifier) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	key := "principal:" + hashToken(token)

	value, err := v.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return v.client.VerifyAccessToken(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}

	principal, ok := value.(user.Principal)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: corrupt principal cache entry", usecase.ErrUnauthorized)
	}

	return principal, nil
}
