package tenant

import (
	"context"
	"encoding/json"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/pkg/kv"
)

// Fixed keys in the backing key-value store. The whole tenant collection
// lives under one key; a reset clears both.
const (
	tenantsKey     = "controlplane:tenants"
	currentUserKey = "controlplane:current_user"
)

// Store owns the canonical tenant collection for the lifetime of the
// backend. Reads return private copies (everything round-trips through
// JSON), so callers never hold a competing reference to stored state.
//
// Put is a full-collection overwrite with no conflict detection: the
// read-modify-write sequence is only safe under the single active caller
// this backend assumes.
type Store struct {
	kv   kv.Store
	seed singleflight.Group
}

type StoreParams struct {
	fx.In
	KV kv.Store
}

func NewStore(p StoreParams) *Store {
	return &Store{kv: p.KV}
}

// List returns the collection in stored order (newest first). On first read
// of an empty backend it installs the fixture set and persists it; the
// singleflight group keeps that seeding idempotent under concurrent first
// reads.
func (s *Store) List(ctx context.Context) ([]*Tenant, error) {
	raw, err := s.kv.Get(ctx, tenantsKey)
	if err != nil {
		return nil, errutil.Internal("failed to read tenant collection", errutil.WithErr(err))
	}

	if len(raw) == 0 || string(raw) == "[]" {
		return s.seedFixtures(ctx)
	}

	var tenants []*Tenant
	if err := json.Unmarshal(raw, &tenants); err != nil {
		return nil, errutil.Internal("corrupt tenant collection", errutil.WithErr(err))
	}
	return tenants, nil
}

func (s *Store) seedFixtures(ctx context.Context) ([]*Tenant, error) {
	_, err, _ := s.seed.Do(tenantsKey, func() (interface{}, error) {
		raw, err := s.kv.Get(ctx, tenantsKey)
		if err != nil {
			return nil, err
		}
		if len(raw) > 0 && string(raw) != "[]" {
			return nil, nil
		}

		zap.L().Info("no stored tenants found, seeding fixtures")
		return nil, s.Put(ctx, seedTenants())
	})
	if err != nil {
		return nil, errutil.Internal("failed to seed tenant fixtures", errutil.WithErr(err))
	}

	return s.List(ctx)
}

// Get returns the stored record for id, or NotFound.
func (s *Store) Get(ctx context.Context, id string) (*Tenant, error) {
	tenants, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tenants {
		if t.TenantID == id {
			return t, nil
		}
	}
	return nil, errutil.NotFound("tenant not found")
}

// Put replaces the entire persisted collection.
func (s *Store) Put(ctx context.Context, tenants []*Tenant) error {
	raw, err := json.Marshal(tenants)
	if err != nil {
		return errutil.Internal("failed to encode tenant collection", errutil.WithErr(err))
	}
	if err := s.kv.Set(ctx, tenantsKey, raw); err != nil {
		return errutil.Internal("failed to persist tenant collection", errutil.WithErr(err))
	}
	return nil
}

// CurrentUser returns the persisted login record, or nil when absent.
func (s *Store) CurrentUser(ctx context.Context) (*AuthUser, error) {
	raw, err := s.kv.Get(ctx, currentUserKey)
	if err != nil {
		return nil, errutil.Internal("failed to read current user", errutil.WithErr(err))
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var user AuthUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, errutil.Internal("corrupt current user record", errutil.WithErr(err))
	}
	return &user, nil
}

func (s *Store) SetCurrentUser(ctx context.Context, user *AuthUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errutil.Internal("failed to encode current user", errutil.WithErr(err))
	}
	if err := s.kv.Set(ctx, currentUserKey, raw); err != nil {
		return errutil.Internal("failed to persist current user", errutil.WithErr(err))
	}
	return nil
}

// ClearCurrentUser removes only the login record.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, currentUserKey); err != nil {
		return errutil.Internal("failed to clear current user", errutil.WithErr(err))
	}
	return nil
}

// Reset clears both persisted keys. The next read reseeds fixtures.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, tenantsKey); err != nil {
		return errutil.Internal("failed to clear tenant collection", errutil.WithErr(err))
	}
	if err := s.kv.Delete(ctx, currentUserKey); err != nil {
		return errutil.Internal("failed to clear current user", errutil.WithErr(err))
	}
	return nil
}
