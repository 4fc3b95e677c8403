package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"innkeeper/internal/record"
)

// Workflow refusals.
var (
	ErrInvalidState = errors.New("reservation is not in the required state")
	ErrTokenExpired = errors.New("reservation token has expired")
	ErrWalletInUse  = errors.New("wallet is already bound to a tenant")
)

// ReservationRequest carries the applicant-supplied intake fields.
type ReservationRequest struct {
	TenantName   string
	TenantReason string
	ContactName  string
	ContactEmail string
	ContactPhone string
}

// Service drives the reservation workflow over the record store.
type Service struct {
	store  *record.Store
	logger *zap.Logger
}

// NewService creates a workflow service.
func NewService(store *record.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateReservation files a new tenancy request in the requested state.
func (s *Service) CreateReservation(ctx context.Context, req ReservationRequest) (*ReservationRecord, error) {
	res, err := NewReservation(ReservationRecord{
		TenantName:   req.TenantName,
		TenantReason: req.TenantReason,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Session().Save(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		zap.String("reservation_id", res.ReservationID()),
		zap.String("tenant_name", res.TenantName))
	return res, nil
}

// ApproveReservation issues a reservation token with the default expiry
// and moves the reservation to approved. Only requested reservations can
// be approved.
func (s *Service) ApproveReservation(ctx context.Context, reservationID string) (*ReservationRecord, error) {
	var res *ReservationRecord
	err := s.store.Transaction(ctx, func(sess *record.Session) error {
		var err error
		res, err = record.Get[ReservationRecord](ctx, sess, reservationID)
		if err != nil {
			return err
		}
		if res.State != ReservationStateRequested {
			return fmt.Errorf("approve reservation %s in state %q: %w",
				reservationID, res.State, ErrInvalidState)
		}

		res.ReservationToken = uuid.NewString()
		res.SetDefaultTokenExpiry()
		res.State = ReservationStateApproved
		return sess.Save(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation approved",
		zap.String("reservation_id", res.ReservationID()),
		zap.String("expires_at", res.ReservationTokenExpiry))
	return res, nil
}

// CheckIn redeems an approved reservation token, provisioning the tenant
// bound to walletID and completing the reservation. Expired tokens are
// refused here; the record's Expired check alone never blocks anything.
func (s *Service) CheckIn(ctx context.Context, token, walletID string) (*TenantRecord, error) {
	if token == "" {
		return nil, fmt.Errorf("check in: reservation token is required")
	}
	if walletID == "" {
		return nil, fmt.Errorf("check in: wallet id is required")
	}

	var ten *TenantRecord
	err := s.store.Transaction(ctx, func(sess *record.Session) error {
		res, err := QueryReservationByToken(ctx, sess, token)
		if err != nil {
			return err
		}
		if res.State != ReservationStateApproved {
			return fmt.Errorf("check in reservation %s in state %q: %w",
				res.ReservationID(), res.State, ErrInvalidState)
		}
		if res.Expired() {
			return fmt.Errorf("check in reservation %s: %w", res.ReservationID(), ErrTokenExpired)
		}

		if _, err := QueryTenantByWalletID(ctx, sess, walletID); err == nil {
			return fmt.Errorf("check in wallet %s: %w", walletID, ErrWalletInUse)
		} else if !errors.Is(err, record.ErrNotFound) {
			return err
		}

		ten = NewTenant(TenantRecord{TenantName: res.TenantName, WalletID: walletID})
		if err := sess.Save(ctx, ten); err != nil {
			return err
		}

		res.TenantID = ten.TenantID()
		res.WalletID = walletID
		res.State = ReservationStateCompleted
		return sess.Save(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation completed",
		zap.String("tenant_id", ten.TenantID()),
		zap.String("wallet_id", ten.WalletID),
		zap.String("tenant_name", ten.TenantName))
	return ten, nil
}

// GetTenantByWallet returns the tenant bound to walletID.
func (s *Service) GetTenantByWallet(ctx context.Context, walletID string) (*TenantRecord, error) {
	return QueryTenantByWalletID(ctx, s.store.Session(), walletID)
}

// ListReservations returns reservations, optionally filtered by state.
func (s *Service) ListReservations(ctx context.Context, state string) ([]*ReservationRecord, error) {
	filter := record.Tags{}
	if state != "" {
		filter[TagState] = state
	}
	return record.Query[ReservationRecord](ctx, s.store.Session(), filter)
}

// ListTenants returns tenants, optionally filtered by state.
func (s *Service) ListTenants(ctx context.Context, state string) ([]*TenantRecord, error) {
	filter := record.Tags{}
	if state != "" {
		filter[TagState] = state
	}
	return record.Query[TenantRecord](ctx, s.store.Session(), filter)
}
