// Package tenant holds the reservation and tenant record types of the
// innkeeper provisioning workflow, their boundary schemas, and the
// service driving intake, approval and check-in.
package tenant

import (
	"context"
	"time"

	"innkeeper/internal/record"
)

// Record type names used by the store.
const (
	ReservationRecordType = "tenant_reservation"
	TenantRecordType      = "innkeeper_tenant"
)

// Tag attribute names.
const (
	TagState            = "state"
	TagReservationToken = "reservation_token"
	TagWalletID         = "wallet_id"
)

// Reservation states. Requests move requested -> approved -> completed;
// there is no modeled rejected or expired state.
const (
	ReservationStateRequested = "requested"
	ReservationStateApproved  = "approved"
	ReservationStateCompleted = "completed"
)

// DefaultTokenExpiryMinutes is how long an issued reservation token stays
// valid: 7 days.
const DefaultTokenExpiryMinutes = 7 * 24 * 60

// ReservationRecord tracks a tenancy request from submission through
// approval to completion.
type ReservationRecord struct {
	record.Base `json:"-"`

	TenantName   string `json:"tenant_name"`
	TenantReason string `json:"tenant_reason"`

	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`

	TenantID string `json:"tenant_id"`
	WalletID string `json:"wallet_id"`

	ReservationToken string `json:"reservation_token"`
	// ReservationTokenExpiry holds the canonical string form produced by
	// record.FormatDatetime. Empty means the token never expires.
	ReservationTokenExpiry string `json:"reservation_token_expiry"`
}

// NewReservation constructs a reservation, defaulting the state to
// requested and re-normalizing the token expiry.
func NewReservation(r ReservationRecord) (*ReservationRecord, error) {
	if r.State == "" {
		r.State = ReservationStateRequested
	}
	expiry, err := record.NormalizeDatetime(r.ReservationTokenExpiry)
	if err != nil {
		return nil, err
	}
	r.ReservationTokenExpiry = expiry
	return &r, nil
}

// ReservationID returns the store-assigned identifier.
func (r *ReservationRecord) ReservationID() string { return r.ID }

func (r *ReservationRecord) RecordType() string { return ReservationRecordType }

func (r *ReservationRecord) RecordTags() record.Tags {
	return record.Tags{
		TagState:            r.State,
		TagReservationToken: r.ReservationToken,
	}
}

func (r *ReservationRecord) RecordValue() map[string]any {
	return map[string]any{
		"tenant_name":              r.TenantName,
		"tenant_reason":            r.TenantReason,
		"contact_name":             r.ContactName,
		"contact_email":            r.ContactEmail,
		"contact_phone":            r.ContactPhone,
		"reservation_token":        r.ReservationToken,
		"reservation_token_expiry": r.ReservationTokenExpiry,
		"tenant_id":                r.TenantID,
		"wallet_id":                r.WalletID,
	}
}

// SetTokenExpiry sets the expiry to t in canonical form. The zero time
// clears it.
func (r *ReservationRecord) SetTokenExpiry(t time.Time) {
	if t.IsZero() {
		r.ReservationTokenExpiry = ""
		return
	}
	r.ReservationTokenExpiry = record.FormatDatetime(t)
}

// SetTokenExpiryString parses and re-normalizes a timestamp string. Empty
// input clears the expiry.
func (r *ReservationRecord) SetTokenExpiryString(s string) error {
	normalized, err := record.NormalizeDatetime(s)
	if err != nil {
		return err
	}
	r.ReservationTokenExpiry = normalized
	return nil
}

// SetDefaultTokenExpiry stamps the token with the default validity
// window from now.
func (r *ReservationRecord) SetDefaultTokenExpiry() {
	r.SetTokenExpiry(time.Now().UTC().Add(DefaultTokenExpiryMinutes * time.Minute))
}

// Expired reports whether the token expiry lies strictly in the past. A
// reservation without an expiry never expires. Advisory only: callers
// decide what an expired token means for the workflow.
func (r *ReservationRecord) Expired() bool {
	if r.ReservationTokenExpiry == "" {
		return false
	}
	expiry, err := record.ParseDatetime(r.ReservationTokenExpiry)
	if err != nil {
		return false
	}
	return time.Now().UTC().After(expiry)
}

// QueryReservationByToken looks up the reservation carrying token. More
// than one match is ErrDuplicate, none is ErrNotFound. An empty token
// omits the tag condition instead of matching on the empty value, so it
// falls through to the unscoped reservation query.
func QueryReservationByToken(ctx context.Context, s *record.Session, token string) (*ReservationRecord, error) {
	filter := record.Tags{}
	if token != "" {
		filter[TagReservationToken] = token
	}
	return record.FindOne[ReservationRecord](ctx, s, filter)
}
