package tenant_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/record"
	"innkeeper/internal/tenant"
)

func validReservationPayload() string {
	return `{
		"reservation_id": "4b1a9e6c-2f6a-4f2e-9b8f-0d6a8c1e2f3a",
		"tenant_name": "acme",
		"tenant_reason": "issue permits",
		"contact_name": "Jo",
		"contact_email": "jo@example.com",
		"contact_phone": "555-0100",
		"state": "requested"
	}`
}

func TestDecodeReservationSchema(t *testing.T) {
	s, err := tenant.DecodeReservationSchema([]byte(validReservationPayload()))
	require.NoError(t, err)
	assert.Equal(t, "acme", s.TenantName)
	assert.Equal(t, tenant.ReservationStateRequested, s.State)
}

func TestDecodeReservationSchemaMissingRequired(t *testing.T) {
	payload := `{
		"reservation_id": "4b1a9e6c-2f6a-4f2e-9b8f-0d6a8c1e2f3a",
		"tenant_name": "acme",
		"tenant_reason": "issue permits",
		"contact_name": "Jo",
		"contact_phone": "555-0100",
		"state": "requested"
	}`

	_, err := tenant.DecodeReservationSchema([]byte(payload))
	require.Error(t, err)

	var verr *record.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "ContactEmail")
}

func TestDecodeReservationSchemaDropsUnknownFields(t *testing.T) {
	payload := `{
		"reservation_id": "4b1a9e6c-2f6a-4f2e-9b8f-0d6a8c1e2f3a",
		"tenant_name": "acme",
		"tenant_reason": "issue permits",
		"contact_name": "Jo",
		"contact_email": "jo@example.com",
		"contact_phone": "555-0100",
		"state": "requested",
		"foo": "bar"
	}`

	s, err := tenant.DecodeReservationSchema([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "acme", s.TenantName)
}

func TestDecodeReservationSchemaRejectsUnknownState(t *testing.T) {
	payload := `{
		"reservation_id": "4b1a9e6c-2f6a-4f2e-9b8f-0d6a8c1e2f3a",
		"tenant_name": "acme",
		"tenant_reason": "issue permits",
		"contact_name": "Jo",
		"contact_email": "jo@example.com",
		"contact_phone": "555-0100",
		"state": "cancelled"
	}`

	_, err := tenant.DecodeReservationSchema([]byte(payload))
	var verr *record.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "State")
}

func TestDecodeTenantSchema(t *testing.T) {
	payload := `{
		"tenant_id": "9d2f7c1b-5e4a-4d3c-8a7b-6f5e4d3c2b1a",
		"tenant_name": "acme",
		"state": "active",
		"wallet_id": "wallet-1"
	}`

	s, err := tenant.DecodeTenantSchema([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "wallet-1", s.WalletID)
}

func TestDecodeTenantSchemaRejectsUnknownState(t *testing.T) {
	payload := `{
		"tenant_id": "9d2f7c1b-5e4a-4d3c-8a7b-6f5e4d3c2b1a",
		"tenant_name": "acme",
		"state": "archived"
	}`

	_, err := tenant.DecodeTenantSchema([]byte(payload))
	var verr *record.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "State")
}

func TestSchemaFromRecordRoundTrip(t *testing.T) {
	res, err := tenant.NewReservation(tenant.ReservationRecord{
		TenantName:   "acme",
		TenantReason: "issue permits",
		ContactName:  "Jo",
		ContactEmail: "jo@example.com",
		ContactPhone: "555-0100",
	})
	require.NoError(t, err)
	res.SetRecordID("4b1a9e6c-2f6a-4f2e-9b8f-0d6a8c1e2f3a")

	s := tenant.ReservationSchemaFromRecord(res)
	assert.Equal(t, res.ReservationID(), s.ReservationID)
	assert.Equal(t, tenant.ReservationStateRequested, s.State)
}
