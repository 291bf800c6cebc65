package billing

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/enttest"
	"github.com/vivasaude/vivasaude/pkg/coupons"

	_ "github.com/mattn/go-sqlite3"
)

// planRecorder captures subscription metrics emitted by the webhook path
type planRecorder struct {
	plans []string
}

func (r *planRecorder) RecordSubscriptionSold(plan string) {
	r.plans = append(r.plans, plan)
}

func setupWebhookTest(t *testing.T) (*ent.Client, *Service, *planRecorder) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	svc := NewService(client, coupons.NewService(client), testConfig())
	recorder := &planRecorder{}
	svc.SetMetrics(recorder)
	return client, svc, recorder
}

func checkoutCompletedEvent(t *testing.T, metadata map[string]string) stripe.Event {
	payload, err := json.Marshal(map[string]interface{}{
		"id":           "cs_test_123",
		"subscription": "sub_test_123",
		"metadata":     metadata,
	})
	require.NoError(t, err)

	return stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: payload},
	}
}

func TestHandleCheckoutCompleted_ActivatesPlanAndRecordsSale(t *testing.T) {
	client, svc, recorder := setupWebhookTest(t)
	defer client.Close()

	ctx := context.Background()
	u, err := client.User.Create().
		SetEmail("pro@example.com").
		SetPasswordHash("x").
		SetName("Pro").
		SetRole("professional").
		Save(ctx)
	require.NoError(t, err)

	event := checkoutCompletedEvent(t, map[string]string{
		"user_id":  strconv.Itoa(u.ID),
		"plan_key": "100-monthly",
	})

	require.NoError(t, svc.handleCheckoutCompleted(ctx, event))

	updated, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "100-monthly", updated.PlanKey)

	subs, err := client.Subscription.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub_test_123", subs[0].StripeSubscriptionID)

	// The sale is counted by tier, not by the full plan key
	assert.Equal(t, []string{"100"}, recorder.plans)
}

func TestHandleCheckoutCompleted_MalformedUserIDIsNotRetried(t *testing.T) {
	client, svc, recorder := setupWebhookTest(t)
	defer client.Close()

	ctx := context.Background()
	event := checkoutCompletedEvent(t, map[string]string{
		"user_id":  "not-a-number",
		"plan_key": "100-monthly",
	})

	// A nil return acknowledges the event so Stripe stops retrying
	require.NoError(t, svc.handleCheckoutCompleted(ctx, event))

	count, err := client.Subscription.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, recorder.plans)
}

func TestHandleCheckoutCompleted_MissingUserIDFails(t *testing.T) {
	client, svc, _ := setupWebhookTest(t)
	defer client.Close()

	event := checkoutCompletedEvent(t, map[string]string{
		"plan_key": "100-monthly",
	})

	assert.Error(t, svc.handleCheckoutCompleted(context.Background(), event))
}
