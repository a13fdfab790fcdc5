package models

// ReferredAffiliate is the summary a partner keeps about each account signed up
// with their code.
type ReferredAffiliate struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	BonusEligible bool   `json:"bonusEligible"`
}

// Affiliate is a referral partner account, keyed by email in the store.
// PasswordHash is only meaningful in local mode; gateway-backed deployments
// defer credential checks to the worker. Code is unique across all affiliates
// and never equals the account's own ReferrerCode.
type Affiliate struct {
	Name                   string              `json:"name"`
	Email                  string              `json:"email"`
	PasswordHash           string              `json:"passwordHash,omitempty"`
	Code                   string              `json:"code"`
	ReferrerCode           string              `json:"referrerCode,omitempty"`
	ReferredAffiliates     []ReferredAffiliate `json:"referredAffiliates"`
	Orders                 []string            `json:"orders"`
	Commission             float64             `json:"commission"`
	Verified               bool                `json:"verified"`
	PayoutThresholdReached bool                `json:"payoutThresholdReached"`
}

// Sanitized returns a copy safe to include in API responses.
func (a Affiliate) Sanitized() Affiliate {
	a.PasswordHash = ""
	return a
}
