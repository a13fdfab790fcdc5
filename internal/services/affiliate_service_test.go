package services

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

func newTestAffiliates(t *testing.T) (*AffiliateService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	return NewAffiliateService(st), st
}

func TestSignupIssuesCodeFromName(t *testing.T) {
	svc, _ := newTestAffiliates(t)

	affiliate, err := svc.Signup(SignupInput{
		Name:           "Ada Okafor",
		Email:          "Ada@Example.com",
		Password:       "secret123",
		PolicyAccepted: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", affiliate.Email, "emails are normalized")
	assert.True(t, strings.HasPrefix(affiliate.Code, "ada"))
	assert.True(t, affiliate.Verified, "local accounts are auto-verified")
	assert.Empty(t, affiliate.Orders)
	assert.Zero(t, affiliate.Commission)
}

func TestSignupRejectsWithoutPolicy(t *testing.T) {
	svc, _ := newTestAffiliates(t)

	_, err := svc.Signup(SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrTermsNotAccepted)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAffiliates(t)

	input := SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret123", PolicyAccepted: true}
	_, err := svc.Signup(input)
	require.NoError(t, err)

	input.Email = "ADA@example.com"
	_, err = svc.Signup(input)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupAttachesToReferrerChain(t *testing.T) {
	svc, _ := newTestAffiliates(t)

	upstream, err := svc.Signup(SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", PolicyAccepted: true,
	})
	require.NoError(t, err)

	_, err = svc.Signup(SignupInput{
		Name: "Bola", Email: "bola@example.com", Password: "secret123",
		ReferrerCode: upstream.Code, PolicyAccepted: true,
	})
	require.NoError(t, err)

	refreshed, err := svc.Get("ada@example.com")
	require.NoError(t, err)
	require.Len(t, refreshed.ReferredAffiliates, 1)
	assert.Equal(t, "bola@example.com", refreshed.ReferredAffiliates[0].Email)
}

func TestSignupToleratesUnknownReferrer(t *testing.T) {
	svc, _ := newTestAffiliates(t)

	affiliate, err := svc.Signup(SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret123",
		ReferrerCode: "ghost999", PolicyAccepted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ghost999", affiliate.ReferrerCode, "dangling codes are stored, attribute nothing")
}

func TestSignupWidensCodeSuffixOnCollision(t *testing.T) {
	svc, st := newTestAffiliates(t)

	// Occupy every short-suffix code for the name, forcing the wide suffix.
	taken := make(map[string]models.Affiliate, 1000)
	for i := 0; i < 1000; i++ {
		email := fmt.Sprintf("holder%d@example.com", i)
		taken[email] = models.Affiliate{Email: email, Code: fmt.Sprintf("ada%03d", i)}
	}
	require.NoError(t, st.SetAffiliates(taken))

	affiliate, err := svc.Signup(SignupInput{
		Name: "Ada Okafor", Email: "ada@example.com", Password: "secret123", PolicyAccepted: true,
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ada\d{6}$`), affiliate.Code)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAffiliates(t)

	_, err := svc.Signup(SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", PolicyAccepted: true,
	})
	require.NoError(t, err)

	affiliate, err := svc.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", affiliate.Email)

	_, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEarnings(t *testing.T) {
	affiliate := models.Affiliate{Code: "ada123"}
	orders := []models.Order{
		{Total: 15000, ReferrerCode: "ada123"},
		{Total: 30000, ReferrerCode: "ada123"},
		{Total: 99999, ReferrerCode: "other"},
		{Total: 5000},
	}

	assert.InDelta(t, 4500, Earnings(affiliate, orders), 0.001, "ten percent of attributed totals")
	assert.Zero(t, Earnings(affiliate, nil))

	affiliate.Commission = 777
	assert.InDelta(t, 777, Earnings(affiliate, orders), 0.001, "stored commission wins when set")
}

func TestPayoutEligible(t *testing.T) {
	assert.False(t, PayoutEligible(4999.99, true))
	assert.True(t, PayoutEligible(5000, true))
	assert.True(t, PayoutEligible(8200, true))
	assert.False(t, PayoutEligible(8200, false), "unverified accounts never qualify")
}

func TestStatsUpdatesThresholdFlag(t *testing.T) {
	svc, st := newTestAffiliates(t)

	created, err := svc.Signup(SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", PolicyAccepted: true,
	})
	require.NoError(t, err)

	require.NoError(t, st.SetOrders([]models.Order{
		{ID: "o1", Total: 30000, ReferrerCode: created.Code},
		{ID: "o2", Total: 30000, ReferrerCode: created.Code},
	}))

	stats, err := svc.Stats("ada@example.com")
	require.NoError(t, err)

	assert.InDelta(t, 6000, stats.Earnings, 0.001)
	assert.True(t, stats.PayoutEligible)
	assert.Len(t, stats.LinkedOrders, 2)
	assert.Equal(t, PayoutThreshold, stats.Threshold)
	assert.Empty(t, stats.Affiliate.PasswordHash, "dashboard view never leaks the hash")

	stored, err := svc.Get("ada@example.com")
	require.NoError(t, err)
	assert.True(t, stored.PayoutThresholdReached)
}

func TestStatsUnknownAccount(t *testing.T) {
	svc, _ := newTestAffiliates(t)
	_, err := svc.Stats("nobody@example.com")
	assert.ErrorIs(t, err, ErrAffiliateNotFound)
}
