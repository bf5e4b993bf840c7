// Package resolver looks up usernames against the companion User service.
// GroupUserService never stores usernames itself (only numeric uids), so
// every invite/kick/role-change by username has to cross this boundary.
// The pattern — circuit breaker wrapping the RPC, a positive-only Redis
// cache in front of it, singleflight collapsing concurrent lookups of the
// same username — mirrors how the platform's reel service resolves
// authors and friend lists from the same User service.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/connectify-dev/groupuser-service/api/userpb"
	"github.com/connectify-dev/groupuser-service/internal/cache"
	"github.com/connectify-dev/groupuser-service/internal/resilience"
	"golang.org/x/sync/singleflight"
)

const positiveTTL = 5 * time.Minute

type Resolver struct {
	client  userpb.UserServiceClient
	breaker *resilience.CircuitBreaker
	cache   *cache.Client
	logger  *slog.Logger
	group   singleflight.Group
}

func New(client userpb.UserServiceClient, breaker *resilience.CircuitBreaker, cache *cache.Client, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{client: client, breaker: breaker, cache: cache, logger: logger}
}

// ResolveUsername returns the uid for username, or found=false if the User
// service reports no such user. A negative result is never cached: a
// username that doesn't exist yet may be registered moments later, and a
// stale "not found" would block a legitimate invite.
func (r *Resolver) ResolveUsername(ctx context.Context, username string) (uid uint64, found bool, err error) {
	cacheKey := fmt.Sprintf("groupuser:uid:%s", username)

	if r.cache != nil {
		if cached, cerr := r.cache.GetString(ctx, cacheKey); cerr == nil && cached != "" {
			var cachedUID uint64
			if _, scanErr := fmt.Sscanf(cached, "%d", &cachedUID); scanErr == nil {
				return cachedUID, true, nil
			}
		}
	}

	val, err, _ := r.group.Do(username, func() (interface{}, error) {
		return r.callUserService(ctx, username)
	})
	if err != nil {
		r.logger.Warn("username resolution failed", "username", username, "error", err)
		return 0, false, err
	}

	resp := val.(*userpb.ResolveUsernameToUserIdResponse)
	if !resp.Found {
		return 0, false, nil
	}

	if r.cache != nil {
		r.cache.SetString(ctx, cacheKey, fmt.Sprintf("%d", resp.Uid), positiveTTL)
	}
	return resp.Uid, true, nil
}

func (r *Resolver) callUserService(ctx context.Context, username string) (*userpb.ResolveUsernameToUserIdResponse, error) {
	req := &userpb.ResolveUsernameToUserIdRequest{Username: username}

	if r.breaker == nil {
		return r.client.ResolveUsernameToUserId(ctx, req)
	}

	result, err := r.breaker.Execute(ctx, func() (interface{}, error) {
		return r.client.ResolveUsernameToUserId(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*userpb.ResolveUsernameToUserIdResponse), nil
}

// ResolveUID returns the username for uid, used to populate GetGroupInfo's
// member roster. Same cache/breaker/singleflight shape as ResolveUsername,
// keyed the other direction.
func (r *Resolver) ResolveUID(ctx context.Context, uid uint64) (username string, found bool, err error) {
	cacheKey := fmt.Sprintf("groupuser:username:%d", uid)

	if r.cache != nil {
		if cached, cerr := r.cache.GetString(ctx, cacheKey); cerr == nil && cached != "" {
			return cached, true, nil
		}
	}

	sfKey := fmt.Sprintf("uid:%d", uid)
	val, err, _ := r.group.Do(sfKey, func() (interface{}, error) {
		req := &userpb.ResolveUserIdToUsernameRequest{Uid: uid}
		if r.breaker == nil {
			return r.client.ResolveUserIdToUsername(ctx, req)
		}
		result, cbErr := r.breaker.Execute(ctx, func() (interface{}, error) {
			return r.client.ResolveUserIdToUsername(ctx, req)
		})
		if cbErr != nil {
			return nil, cbErr
		}
		return result.(*userpb.ResolveUserIdToUsernameResponse), nil
	})
	if err != nil {
		r.logger.Warn("uid resolution failed", "uid", uid, "error", err)
		return "", false, err
	}

	resp := val.(*userpb.ResolveUserIdToUsernameResponse)
	if !resp.Found {
		return "", false, nil
	}

	if r.cache != nil {
		r.cache.SetString(ctx, cacheKey, resp.Username, positiveTTL)
	}
	return resp.Username, true, nil
}
