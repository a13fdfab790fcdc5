package models

// Payout request statuses. Eligible is stored by older worker deployments and
// is treated like pending for transition purposes.
const (
	PayoutStatusPending  = "pending"
	PayoutStatusEligible = "eligible"
	PayoutStatusApproved = "approved"
	PayoutStatusPaid     = "paid"
	PayoutStatusRejected = "rejected"
)

// Payout history actors.
const (
	PayoutActorAdmin  = "admin"
	PayoutActorSystem = "system"
)

// PayoutHistoryEntry records one status change. The history list is
// append-only and never reordered or truncated.
type PayoutHistoryEntry struct {
	Status string `json:"status"`
	Date   int64  `json:"date"`
	Actor  string `json:"actor"`
}

// PayoutRequest is a partner's withdrawal request. AffiliateEmail and
// AffiliateName are snapshots taken when the request is made.
type PayoutRequest struct {
	ID             string               `json:"id"`
	AffiliateEmail string               `json:"affiliateEmail"`
	AffiliateName  string               `json:"affiliateName"`
	Amount         float64              `json:"amount"`
	Status         string               `json:"status"`
	RequestDate    int64                `json:"requestDate"`
	PayoutDate     *int64               `json:"payoutDate,omitempty"`
	History        []PayoutHistoryEntry `json:"history"`
}
