package coupons

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/coupon"
	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return NewService(client), client
}

func createTestCoupon(t *testing.T, client *ent.Client, code string, mutate func(*ent.CouponCreate)) *ent.Coupon {
	builder := client.Coupon.Create().
		SetCode(code).
		SetDiscountType(coupon.DiscountTypePercentage).
		SetDiscountValue(10).
		SetAudience(coupon.AudienceAll).
		SetValidFrom(time.Now().Add(-time.Hour))

	if mutate != nil {
		mutate(builder)
	}

	c, err := builder.Save(context.Background())
	require.NoError(t, err)
	return c
}

func TestValidate_Success(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	createTestCoupon(t, client, "DESC10", nil)

	c, err := service.Validate(context.Background(), "DESC10", AudiencePatients)
	require.NoError(t, err)
	assert.Equal(t, "DESC10", c.Code)
	assert.Equal(t, 10.0, c.DiscountValue)
}

func TestValidate_NormalizationIdempotent(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	createTestCoupon(t, client, "DESC10", nil)

	raw, err := service.Validate(context.Background(), " desc10 ", AudienceAll)
	require.NoError(t, err)
	normalized, err := service.Validate(context.Background(), "DESC10", AudienceAll)
	require.NoError(t, err)

	assert.Equal(t, normalized.Code, raw.Code)
	assert.Equal(t, normalized.ID, raw.ID)
}

func TestValidate_NotFound(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	_, err := service.Validate(context.Background(), "MISSING", AudienceAll)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate_InactiveDistinctFromNotFound(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	createTestCoupon(t, client, "RETIRED", func(b *ent.CouponCreate) {
		b.SetActive(false)
	})

	_, err := service.Validate(context.Background(), "RETIRED", AudienceAll)
	assert.ErrorIs(t, err, ErrInactive)
}

func TestValidate_InvalidFormat(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	_, err := service.Validate(context.Background(), "no good!", AudienceAll)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidate_NeverMutatesUsage(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createTestCoupon(t, client, "DESC10", nil)

	for i := 0; i < 5; i++ {
		_, err := service.Validate(context.Background(), "DESC10", AudienceAll)
		require.NoError(t, err)
	}

	reloaded, err := client.Coupon.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.CurrentUses)
}

func TestConsume_IncrementsUpToCap(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createTestCoupon(t, client, "CAPPED", func(b *ent.CouponCreate) {
		b.SetMaxUses(3)
	})

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, service.Consume(ctx, "CAPPED"))

		reloaded, err := client.Coupon.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, i, reloaded.CurrentUses)
	}

	// The cap is exhausted: the next attempt is a late LimitReached.
	assert.ErrorIs(t, service.Consume(ctx, "CAPPED"), ErrLimitReached)

	reloaded, err := client.Coupon.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.CurrentUses, "counter never exceeds max_uses")
}

func TestConsume_UnlimitedWhenNoCap(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createTestCoupon(t, client, "NOCAP", nil)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, service.Consume(ctx, "NOCAP"))
	}

	reloaded, err := client.Coupon.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.CurrentUses)
}

func TestConsume_InactiveRejected(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	createTestCoupon(t, client, "RETIRED", func(b *ent.CouponCreate) {
		b.SetActive(false)
	})

	assert.ErrorIs(t, service.Consume(context.Background(), "RETIRED"), ErrLimitReached)
}

func TestConsume_ConcurrentNeverOversells(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createTestCoupon(t, client, "RACE", func(b *ent.CouponCreate) {
		b.SetMaxUses(3)
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := service.Consume(ctx, "RACE"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, successes, 3, "no overselling under concurrent requests")

	reloaded, err := client.Coupon.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, successes, reloaded.CurrentUses)
	assert.LessOrEqual(t, reloaded.CurrentUses, 3)
}

func TestRelease_Decrements(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createTestCoupon(t, client, "DESC10", nil)
	ctx := context.Background()

	require.NoError(t, service.Consume(ctx, "DESC10"))
	require.NoError(t, service.Release(ctx, "DESC10"))

	reloaded, err := client.Coupon.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.CurrentUses)

	// A release with nothing consumed is a no-op, not an underflow.
	require.NoError(t, service.Release(ctx, "DESC10"))
	reloaded, err = client.Coupon.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.CurrentUses)
}

func TestCreate_NormalizesAndDefaults(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c, err := service.Create(context.Background(), models.CreateCouponRequest{
		Code:          " bemvindo ",
		DiscountType:  "percentage",
		DiscountValue: 15,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "BEMVINDO", c.Code)
	assert.Equal(t, coupon.AudienceAll, c.Audience)
	assert.True(t, c.Active)
	assert.Equal(t, 0, c.CurrentUses)
}

func TestCreate_PercentageOver100Rejected(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	_, err := service.Create(context.Background(), models.CreateCouponRequest{
		Code:          "TOOBIG",
		DiscountType:  "percentage",
		DiscountValue: 150,
	}, nil)
	assert.Error(t, err)
}

func TestCreate_DuplicateCodeRejected(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	req := models.CreateCouponRequest{
		Code:          "DESC10",
		DiscountType:  "fixed",
		DiscountValue: 10,
	}

	_, err := service.Create(context.Background(), req, nil)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), req, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRetire_KeepsRow(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	c := createTestCoupon(t, client, "DESC10", nil)

	retired, err := service.Retire(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, retired.Active)

	// Retired, not deleted: lookup still distinguishes Inactive.
	_, err = service.Validate(context.Background(), "DESC10", AudienceAll)
	assert.ErrorIs(t, err, ErrInactive)
}

func TestRetireExpired(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	createTestCoupon(t, client, "OLD", func(b *ent.CouponCreate) {
		b.SetValidUntil(past)
	})
	createTestCoupon(t, client, "FRESH", func(b *ent.CouponCreate) {
		b.SetValidUntil(future)
	})
	createTestCoupon(t, client, "FOREVER", nil)

	n, err := service.RetireExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.Validate(context.Background(), "OLD", AudienceAll)
	assert.ErrorIs(t, err, ErrInactive)
	_, err = service.Validate(context.Background(), "FRESH", AudienceAll)
	assert.NoError(t, err)
	_, err = service.Validate(context.Background(), "FOREVER", AudienceAll)
	assert.NoError(t, err)
}
