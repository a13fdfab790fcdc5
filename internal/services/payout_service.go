package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

// Payout service errors.
var (
	ErrPayoutNotFound    = errors.New("payout request not found")
	ErrNotEligible       = errors.New("payout threshold not reached or account unverified")
	ErrUnknownStatus     = errors.New("unknown payout status")
	ErrInvalidTransition = errors.New("invalid payout transition")
)

// InvalidTransitionError signals a disallowed payout state change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid payout transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// payoutTransitions enumerates every permitted state change. A stored
// "eligible" status transitions exactly like "pending"; "paid" and "rejected"
// are terminal.
var payoutTransitions = map[string][]string{
	models.PayoutStatusPending:  {models.PayoutStatusApproved, models.PayoutStatusRejected},
	models.PayoutStatusEligible: {models.PayoutStatusApproved, models.PayoutStatusRejected},
	models.PayoutStatusApproved: {models.PayoutStatusPaid},
	models.PayoutStatusPaid:     {},
	models.PayoutStatusRejected: {},
}

// CanTransition reports whether a payout may move from one status to another.
func CanTransition(from, to string) bool {
	allowed, ok := payoutTransitions[from]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == to {
			return true
		}
	}
	return false
}

// PayoutService owns the payout request lifecycle when this server is the
// authority (standalone deployments): request creation gated by eligibility,
// and the pending→approved→paid / pending→rejected state machine with an
// append-only history.
type PayoutService struct {
	store *store.Store
}

// NewPayoutService constructs a PayoutService.
func NewPayoutService(st *store.Store) *PayoutService {
	return &PayoutService{store: st}
}

// List returns all payout requests.
func (s *PayoutService) List() []models.PayoutRequest {
	return s.store.Payouts()
}

// Request opens a payout request for a partner's current earnings. It is
// rejected unless the partner has reached the threshold and is verified.
func (s *PayoutService) Request(affiliate models.Affiliate, earnings float64) (models.PayoutRequest, error) {
	if !PayoutEligible(earnings, affiliate.Verified) {
		return models.PayoutRequest{}, ErrNotEligible
	}

	now := time.Now().UnixMilli()
	payout := models.PayoutRequest{
		ID:             uuid.NewString(),
		AffiliateEmail: affiliate.Email,
		AffiliateName:  affiliate.Name,
		Amount:         earnings,
		Status:         models.PayoutStatusPending,
		RequestDate:    now,
		History: []models.PayoutHistoryEntry{
			{Status: models.PayoutStatusPending, Date: now, Actor: models.PayoutActorSystem},
		},
	}

	if err := s.store.SetPayouts(append(s.store.Payouts(), payout)); err != nil {
		return models.PayoutRequest{}, err
	}
	return payout, nil
}

// Transition moves a payout request to a new status, appending one history
// entry tagged with the initiating actor. Terminal requests and skipped
// states are rejected.
func (s *PayoutService) Transition(id, status, actor string) (models.PayoutRequest, error) {
	if _, known := payoutTransitions[status]; !known {
		return models.PayoutRequest{}, ErrUnknownStatus
	}

	payouts := s.store.Payouts()
	for i := range payouts {
		if payouts[i].ID != id {
			continue
		}

		if !CanTransition(payouts[i].Status, status) {
			return models.PayoutRequest{}, &InvalidTransitionError{From: payouts[i].Status, To: status}
		}

		now := time.Now().UnixMilli()
		payouts[i].Status = status
		payouts[i].History = append(payouts[i].History, models.PayoutHistoryEntry{
			Status: status,
			Date:   now,
			Actor:  actor,
		})
		if status == models.PayoutStatusPaid {
			payouts[i].PayoutDate = &now
		}

		if err := s.store.SetPayouts(payouts); err != nil {
			return models.PayoutRequest{}, err
		}
		return payouts[i], nil
	}
	return models.PayoutRequest{}, ErrPayoutNotFound
}
