package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
	"github.com/dkadris/storefront/internal/utils"
)

// Referral program policy.
const (
	CommissionRate  = 0.10
	PayoutThreshold = 5000.0
	// HoldingDays is the validation window communicated to partners. It is
	// informational copy, not an enforced gate.
	HoldingDays = 14

	codeSuffixDigits   = 3
	codeRetryLimit     = 5
	codeWideSuffixSize = 6
)

// Affiliate service errors.
var (
	ErrTermsNotAccepted   = errors.New("partnership policy must be accepted")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAffiliateNotFound  = errors.New("affiliate not found")
	ErrSelfReferral       = errors.New("an affiliate cannot refer itself")
)

// SignupInput is a validated signup request.
type SignupInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	ReferrerCode   string `json:"referrerCode"`
	PolicyAccepted bool   `json:"policyAccepted"`
}

// AffiliateStats is a partner's dashboard view.
type AffiliateStats struct {
	Affiliate      models.Affiliate `json:"affiliate"`
	Earnings       float64          `json:"earnings"`
	Threshold      float64          `json:"threshold"`
	PayoutEligible bool             `json:"payoutEligible"`
	HoldingDays    int              `json:"holdingDays"`
	LinkedOrders   []models.Order   `json:"linkedOrders"`
}

// AffiliateService implements the local-mode referral engine: account
// creation, unique code issuance, referral attribution and commission
// computation. Gateway-backed deployments delegate signup, login and stats to
// the worker at the handler level.
type AffiliateService struct {
	store *store.Store
}

// NewAffiliateService constructs an AffiliateService.
func NewAffiliateService(st *store.Store) *AffiliateService {
	return &AffiliateService{store: st}
}

// Signup creates a new partner account. The referral code is derived from the
// account name plus a random numeric suffix and regenerated until unique.
// Local-mode accounts are auto-verified since no email-confirmation provider
// is available.
func (s *AffiliateService) Signup(input SignupInput) (models.Affiliate, error) {
	if !input.PolicyAccepted {
		return models.Affiliate{}, ErrTermsNotAccepted
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	affiliates := s.store.Affiliates()
	if _, exists := affiliates[email]; exists {
		return models.Affiliate{}, ErrEmailTaken
	}

	code, err := s.uniqueCode(input.Name, affiliates)
	if err != nil {
		return models.Affiliate{}, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.Affiliate{}, fmt.Errorf("hash password: %w", err)
	}

	referrer := strings.TrimSpace(input.ReferrerCode)
	if referrer == code {
		return models.Affiliate{}, ErrSelfReferral
	}

	affiliate := models.Affiliate{
		Name:               strings.TrimSpace(input.Name),
		Email:              email,
		PasswordHash:       hash,
		Code:               code,
		ReferrerCode:       referrer,
		ReferredAffiliates: []models.ReferredAffiliate{},
		Orders:             []string{},
		Commission:         0,
		Verified:           true,
	}
	affiliates[email] = affiliate

	// Attach the new partner to the upstream referrer's chain when the code
	// resolves. Unknown codes are tolerated and simply attribute nothing.
	if referrer != "" {
		for upEmail, up := range affiliates {
			if up.Code == referrer && upEmail != email {
				up.ReferredAffiliates = append(up.ReferredAffiliates, models.ReferredAffiliate{
					Name:  affiliate.Name,
					Email: affiliate.Email,
				})
				affiliates[upEmail] = up
				break
			}
		}
	}

	if err := s.store.SetAffiliates(affiliates); err != nil {
		return models.Affiliate{}, err
	}
	return affiliate, nil
}

// Login checks credentials against the stored record.
func (s *AffiliateService) Login(email, password string) (models.Affiliate, error) {
	affiliate, ok := s.store.Affiliates()[strings.ToLower(strings.TrimSpace(email))]
	if !ok || !utils.CheckPassword(affiliate.PasswordHash, password) {
		return models.Affiliate{}, ErrInvalidCredentials
	}
	return affiliate, nil
}

// Get returns the stored affiliate record for an email.
func (s *AffiliateService) Get(email string) (models.Affiliate, error) {
	affiliate, ok := s.store.Affiliates()[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return models.Affiliate{}, ErrAffiliateNotFound
	}
	return affiliate, nil
}

// Verify flips the verification flag for an account.
func (s *AffiliateService) Verify(email string) error {
	affiliates := s.store.Affiliates()
	key := strings.ToLower(strings.TrimSpace(email))
	affiliate, ok := affiliates[key]
	if !ok {
		return ErrAffiliateNotFound
	}
	affiliate.Verified = true
	affiliates[key] = affiliate
	return s.store.SetAffiliates(affiliates)
}

// Earnings computes a partner's accrued commission: the authoritative stored
// value when present, otherwise the commission rate applied to every order
// attributed to the partner's code. Attribution resolves lazily here, never
// at order creation.
func Earnings(affiliate models.Affiliate, orders []models.Order) float64 {
	if affiliate.Commission > 0 {
		return affiliate.Commission
	}
	var sum float64
	for _, order := range orders {
		if order.ReferrerCode != "" && order.ReferrerCode == affiliate.Code {
			sum += order.Total * CommissionRate
		}
	}
	return sum
}

// PayoutEligible reports whether earnings and verification allow a payout.
func PayoutEligible(earnings float64, verified bool) bool {
	return earnings >= PayoutThreshold && verified
}

// Stats assembles the dashboard view for an account, updating the stored
// threshold flag when it changed.
func (s *AffiliateService) Stats(email string) (AffiliateStats, error) {
	affiliate, err := s.Get(email)
	if err != nil {
		return AffiliateStats{}, err
	}

	orders := s.store.Orders()
	linked := make([]models.Order, 0)
	for _, order := range orders {
		if order.ReferrerCode != "" && order.ReferrerCode == affiliate.Code {
			linked = append(linked, order)
		}
	}

	earnings := Earnings(affiliate, orders)
	reached := earnings >= PayoutThreshold
	if reached != affiliate.PayoutThresholdReached {
		affiliate.PayoutThresholdReached = reached
		affiliates := s.store.Affiliates()
		affiliates[affiliate.Email] = affiliate
		if err := s.store.SetAffiliates(affiliates); err != nil {
			return AffiliateStats{}, err
		}
	}

	return AffiliateStats{
		Affiliate:      affiliate.Sanitized(),
		Earnings:       earnings,
		Threshold:      PayoutThreshold,
		PayoutEligible: PayoutEligible(earnings, affiliate.Verified),
		HoldingDays:    HoldingDays,
		LinkedOrders:   linked,
	}, nil
}

// uniqueCode issues a referral code no existing affiliate holds. After a few
// collisions on the short suffix it widens the suffix instead of giving up.
func (s *AffiliateService) uniqueCode(name string, affiliates map[string]models.Affiliate) (string, error) {
	taken := make(map[string]bool, len(affiliates))
	for _, a := range affiliates {
		taken[a.Code] = true
	}

	digits := codeSuffixDigits
	for attempt := 0; attempt < codeRetryLimit*codeRetryLimit; attempt++ {
		if attempt == codeRetryLimit {
			digits = codeWideSuffixSize
		}
		code, err := utils.ReferralCode(name, digits)
		if err != nil {
			return "", fmt.Errorf("generate referral code: %w", err)
		}
		if !taken[code] {
			return code, nil
		}
	}
	return "", errors.New("could not issue a unique referral code")
}
