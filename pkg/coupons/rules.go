package coupons

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/vivasaude/vivasaude/ent"
)

// Audience is the caller category a coupon can be restricted to.
type Audience string

const (
	AudienceProfessionals Audience = "professionals"
	AudiencePatients      Audience = "patients"
	AudienceAll           Audience = "all"
)

// MaxCodeLength is the longest accepted coupon code.
const MaxCodeLength = 20

// Validation verdicts. All are user-correctable: the caller may retry with
// a different code or proceed without one.
var (
	ErrInvalidFormat    = errors.New("coupon code format is invalid")
	ErrNotFound         = errors.New("coupon not found")
	ErrInactive         = errors.New("coupon is no longer active")
	ErrNotYetValid      = errors.New("coupon is not valid yet")
	ErrExpired          = errors.New("coupon has expired")
	ErrLimitReached     = errors.New("coupon usage limit reached")
	ErrAudienceMismatch = errors.New("coupon is not available for this audience")
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// NormalizeCode trims, upper-cases and truncates a raw code. Normalization
// is idempotent: validating " desc10 " and "DESC10" yields the same result.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) > MaxCodeLength {
		code = code[:MaxCodeLength]
	}
	if code == "" || !codePattern.MatchString(code) {
		return "", ErrInvalidFormat
	}
	return code, nil
}

// AudienceForRole maps a user role to the coupon audience it belongs to.
// Admins match any audience.
func AudienceForRole(role string) Audience {
	switch role {
	case "professional":
		return AudienceProfessionals
	case "patient":
		return AudiencePatients
	default:
		return AudienceAll
	}
}

// Evaluate applies the coupon usability rules to a persisted coupon at a
// given instant. Pure: no I/O, no mutation. Both the advisory validation
// endpoint and the checkout orchestrator decide through this one function.
func Evaluate(c *ent.Coupon, audience Audience, now time.Time) error {
	if !c.Active {
		return ErrInactive
	}
	if now.Before(c.ValidFrom) {
		return ErrNotYetValid
	}
	// Exactly at valid_until the coupon is still valid.
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return ErrExpired
	}
	if c.MaxUses != nil && c.CurrentUses >= *c.MaxUses {
		return ErrLimitReached
	}
	if Audience(c.Audience) != AudienceAll && Audience(c.Audience) != audience {
		return ErrAudienceMismatch
	}
	return nil
}

// IsVerdict reports whether err is a validation verdict rather than an
// infrastructure failure.
func IsVerdict(err error) bool {
	for _, v := range []error{
		ErrInvalidFormat, ErrNotFound, ErrInactive, ErrNotYetValid,
		ErrExpired, ErrLimitReached, ErrAudienceMismatch,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
