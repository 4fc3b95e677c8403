package tenant

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"innkeeper/internal/record"
)

// ReservationSchema is the boundary shape of a reservation payload.
// Required fields and the state enum are enforced here, not by the
// in-memory record. Unknown payload fields are dropped on decode.
type ReservationSchema struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	TenantName    string `json:"tenant_name" validate:"required"`
	TenantReason  string `json:"tenant_reason" validate:"required"`
	ContactName   string `json:"contact_name" validate:"required"`
	ContactEmail  string `json:"contact_email" validate:"required"`
	ContactPhone  string `json:"contact_phone" validate:"required"`
	State         string `json:"state" validate:"required,oneof=requested approved completed"`
	TenantID      string `json:"tenant_id,omitempty"`
	WalletID      string `json:"wallet_id,omitempty"`
}

// TenantSchema is the boundary shape of a tenant payload.
type TenantSchema struct {
	TenantID   string `json:"tenant_id" validate:"required"`
	TenantName string `json:"tenant_name" validate:"required"`
	State      string `json:"state" validate:"required,oneof=active deleted"`
	WalletID   string `json:"wallet_id,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeReservationSchema parses and validates a reservation payload.
func DecodeReservationSchema(data []byte) (*ReservationSchema, error) {
	var s ReservationSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode reservation payload: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, record.NewValidationError(err)
	}
	return &s, nil
}

// DecodeTenantSchema parses and validates a tenant payload.
func DecodeTenantSchema(data []byte) (*TenantSchema, error) {
	var s TenantSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode tenant payload: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, record.NewValidationError(err)
	}
	return &s, nil
}

// ReservationSchemaFromRecord renders a reservation record in its
// boundary shape.
func ReservationSchemaFromRecord(r *ReservationRecord) *ReservationSchema {
	return &ReservationSchema{
		ReservationID: r.ReservationID(),
		TenantName:    r.TenantName,
		TenantReason:  r.TenantReason,
		ContactName:   r.ContactName,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		State:         r.State,
		TenantID:      r.TenantID,
		WalletID:      r.WalletID,
	}
}

// TenantSchemaFromRecord renders a tenant record in its boundary shape.
func TenantSchemaFromRecord(t *TenantRecord) *TenantSchema {
	return &TenantSchema{
		TenantID:   t.TenantID(),
		TenantName: t.TenantName,
		State:      t.State,
		WalletID:   t.WalletID,
	}
}
