// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vivasaude/vivasaude/ent/auditlog"
	"github.com/vivasaude/vivasaude/ent/coupon"
	"github.com/vivasaude/vivasaude/ent/plan"
	"github.com/vivasaude/vivasaude/ent/schema"
	"github.com/vivasaude/vivasaude/ent/subscription"
	"github.com/vivasaude/vivasaude/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[4].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	couponFields := schema.Coupon{}.Fields()
	_ = couponFields
	// couponDescCode is the schema descriptor for code field.
	couponDescCode := couponFields[0].Descriptor()
	// coupon.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	coupon.CodeValidator = func() func(string) error {
		validators := couponDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// couponDescValidFrom is the schema descriptor for valid_from field.
	couponDescValidFrom := couponFields[5].Descriptor()
	// coupon.DefaultValidFrom holds the default value on creation for the valid_from field.
	coupon.DefaultValidFrom = couponDescValidFrom.Default.(func() time.Time)
	// couponDescMaxUses is the schema descriptor for max_uses field.
	couponDescMaxUses := couponFields[7].Descriptor()
	// coupon.MaxUsesValidator is a validator for the "max_uses" field. It is called by the builders before save.
	coupon.MaxUsesValidator = couponDescMaxUses.Validators[0].(func(int) error)
	// couponDescCurrentUses is the schema descriptor for current_uses field.
	couponDescCurrentUses := couponFields[8].Descriptor()
	// coupon.DefaultCurrentUses holds the default value on creation for the current_uses field.
	coupon.DefaultCurrentUses = couponDescCurrentUses.Default.(int)
	// coupon.CurrentUsesValidator is a validator for the "current_uses" field. It is called by the builders before save.
	coupon.CurrentUsesValidator = couponDescCurrentUses.Validators[0].(func(int) error)
	// couponDescActive is the schema descriptor for active field.
	couponDescActive := couponFields[9].Descriptor()
	// coupon.DefaultActive holds the default value on creation for the active field.
	coupon.DefaultActive = couponDescActive.Default.(bool)
	// couponDescCreatedAt is the schema descriptor for created_at field.
	couponDescCreatedAt := couponFields[10].Descriptor()
	// coupon.DefaultCreatedAt holds the default value on creation for the created_at field.
	coupon.DefaultCreatedAt = couponDescCreatedAt.Default.(func() time.Time)
	// couponDescUpdatedAt is the schema descriptor for updated_at field.
	couponDescUpdatedAt := couponFields[11].Descriptor()
	// coupon.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	coupon.DefaultUpdatedAt = couponDescUpdatedAt.Default.(func() time.Time)
	// coupon.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	coupon.UpdateDefaultUpdatedAt = couponDescUpdatedAt.UpdateDefault.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescKey is the schema descriptor for key field.
	planDescKey := planFields[0].Descriptor()
	// plan.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	plan.KeyValidator = planDescKey.Validators[0].(func(string) error)
	// planDescName is the schema descriptor for name field.
	planDescName := planFields[1].Descriptor()
	// plan.NameValidator is a validator for the "name" field. It is called by the builders before save.
	plan.NameValidator = planDescName.Validators[0].(func(string) error)
	// planDescMonthlyPrice is the schema descriptor for monthly_price field.
	planDescMonthlyPrice := planFields[3].Descriptor()
	// plan.MonthlyPriceValidator is a validator for the "monthly_price" field. It is called by the builders before save.
	plan.MonthlyPriceValidator = planDescMonthlyPrice.Validators[0].(func(float64) error)
	// planDescFree is the schema descriptor for free field.
	planDescFree := planFields[5].Descriptor()
	// plan.DefaultFree holds the default value on creation for the free field.
	plan.DefaultFree = planDescFree.Default.(bool)
	// planDescActive is the schema descriptor for active field.
	planDescActive := planFields[6].Descriptor()
	// plan.DefaultActive holds the default value on creation for the active field.
	plan.DefaultActive = planDescActive.Default.(bool)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[7].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	// planDescUpdatedAt is the schema descriptor for updated_at field.
	planDescUpdatedAt := planFields[8].Descriptor()
	// plan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plan.DefaultUpdatedAt = planDescUpdatedAt.Default.(func() time.Time)
	// plan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plan.UpdateDefaultUpdatedAt = planDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescUserID is the schema descriptor for user_id field.
	subscriptionDescUserID := subscriptionFields[0].Descriptor()
	// subscription.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subscription.UserIDValidator = subscriptionDescUserID.Validators[0].(func(int) error)
	// subscriptionDescPlanKey is the schema descriptor for plan_key field.
	subscriptionDescPlanKey := subscriptionFields[1].Descriptor()
	// subscription.PlanKeyValidator is a validator for the "plan_key" field. It is called by the builders before save.
	subscription.PlanKeyValidator = subscriptionDescPlanKey.Validators[0].(func(string) error)
	// subscriptionDescCancelAtPeriodEnd is the schema descriptor for cancel_at_period_end field.
	subscriptionDescCancelAtPeriodEnd := subscriptionFields[7].Descriptor()
	// subscription.DefaultCancelAtPeriodEnd holds the default value on creation for the cancel_at_period_end field.
	subscription.DefaultCancelAtPeriodEnd = subscriptionDescCancelAtPeriodEnd.Default.(bool)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[9].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[10].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[6].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
