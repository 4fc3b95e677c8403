package tenant

import (
	"context"

	"innkeeper/internal/record"
)

// Tenant states. Deletion semantics are not modeled beyond the state
// value itself.
const (
	TenantStateActive  = "active"
	TenantStateDeleted = "deleted"
)

// TenantRecord represents a provisioned tenant bound to exactly one
// wallet.
type TenantRecord struct {
	record.Base `json:"-"`

	TenantName string `json:"tenant_name"`
	WalletID   string `json:"wallet_id"`
}

// NewTenant constructs a tenant, defaulting the state to active.
func NewTenant(t TenantRecord) *TenantRecord {
	if t.State == "" {
		t.State = TenantStateActive
	}
	return &t
}

// TenantID returns the store-assigned identifier.
func (t *TenantRecord) TenantID() string { return t.ID }

func (t *TenantRecord) RecordType() string { return TenantRecordType }

func (t *TenantRecord) RecordTags() record.Tags {
	return record.Tags{
		TagState:    t.State,
		TagWalletID: t.WalletID,
	}
}

func (t *TenantRecord) RecordValue() map[string]any {
	return map[string]any{
		"tenant_name": t.TenantName,
		"wallet_id":   t.WalletID,
	}
}

// QueryTenantByWalletID looks up the tenant bound to walletID. More than
// one match is ErrDuplicate, none is ErrNotFound. An empty wallet id
// omits the tag condition, falling through to the unscoped tenant query.
func QueryTenantByWalletID(ctx context.Context, s *record.Session, walletID string) (*TenantRecord, error) {
	filter := record.Tags{}
	if walletID != "" {
		filter[TagWalletID] = walletID
	}
	return record.FindOne[TenantRecord](ctx, s, filter)
}
