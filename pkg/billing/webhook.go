package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/subscription"
)

// HandleWebhook processes Stripe webhook events
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	// Verify webhook signature
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	case "invoice.paid":
		return s.handleInvoicePaid(ctx, event)
	case "invoice.payment_failed":
		return s.handleInvoicePaymentFailed(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleCheckoutCompleted handles checkout.session.completed event
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	userIDStr, ok := sess.Metadata["user_id"]
	if !ok {
		return fmt.Errorf("user_id not found in metadata")
	}

	// A malformed user_id can never heal, so don't hand Stripe an error to
	// retry on; log and drop the event.
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		log.Printf("❌ Ignoring checkout.session.completed with malformed user_id %q (session %s)", userIDStr, sess.ID)
		return nil
	}

	planKey := sess.Metadata["plan_key"]
	couponCode := sess.Metadata["coupon_code"]

	log.Printf("✅ Checkout completed: user_id=%d, plan=%s, subscription=%s", userID, planKey, sess.Subscription.ID)

	// Move the professional onto the paid plan
	u, err := s.db.User.UpdateOneID(userID).
		SetPlanKey(planKey).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user plan: %w", err)
	}

	builder := s.db.Subscription.Create().
		SetUserID(userID).
		SetPlanKey(planKey).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID(sess.Subscription.ID)
	if couponCode != "" {
		builder.SetCouponCode(couponCode)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if s.metrics != nil {
		if tier, _, err := SplitPlanKey(planKey); err == nil {
			s.metrics.RecordSubscriptionSold(tier)
		}
	}

	if s.email != nil {
		subject, html, plain := buildSubscriptionActivatedEmail(u.Name, planKey, s.config.BaseURL)
		if err := s.email.SendEmail(u.Email, u.Name, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send activation email to %s: %v", u.Email, err)
		}
	}

	return nil
}

// handleSubscriptionUpdated handles customer.subscription.updated event
func (s *Service) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	log.Printf("🔄 Subscription updated: %s, status=%s", sub.ID, sub.Status)

	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  Subscription not found in DB: %s", sub.ID)
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	status := subscription.StatusActive
	switch sub.Status {
	case stripe.SubscriptionStatusActive:
		status = subscription.StatusActive
	case stripe.SubscriptionStatusCanceled:
		status = subscription.StatusCanceled
	case stripe.SubscriptionStatusPastDue:
		status = subscription.StatusPastDue
	case stripe.SubscriptionStatusUnpaid:
		status = subscription.StatusUnpaid
	case stripe.SubscriptionStatusTrialing:
		status = subscription.StatusTrialing
	}

	_, err = s.db.Subscription.UpdateOne(entSub).
		SetStatus(status).
		SetCurrentPeriodStart(time.Unix(sub.CurrentPeriodStart, 0)).
		SetCurrentPeriodEnd(time.Unix(sub.CurrentPeriodEnd, 0)).
		SetCancelAtPeriodEnd(sub.CancelAtPeriodEnd).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if s.email != nil {
		u, err := s.db.User.Get(ctx, entSub.UserID)
		if err != nil {
			log.Printf("⚠️  Failed to get user for email notification: %v", err)
			return nil
		}

		switch sub.Status {
		case stripe.SubscriptionStatusActive:
			subject, html, plain := buildSubscriptionActivatedEmail(u.Name, entSub.PlanKey, s.config.BaseURL)
			if err := s.email.SendEmail(u.Email, u.Name, subject, html, plain); err != nil {
				log.Printf("⚠️  Failed to send activation email to %s: %v", u.Email, err)
			}
		case stripe.SubscriptionStatusPastDue:
			subject, html, plain := buildPaymentFailedEmail(u.Name, s.config.BaseURL)
			if err := s.email.SendEmail(u.Email, u.Name, subject, html, plain); err != nil {
				log.Printf("⚠️  Failed to send payment failed email to %s: %v", u.Email, err)
			}
		}
	}

	return nil
}

// handleSubscriptionDeleted handles customer.subscription.deleted event
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	log.Printf("❌ Subscription deleted: %s", sub.ID)

	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	_, err = s.db.Subscription.UpdateOne(entSub).
		SetStatus(subscription.StatusCanceled).
		SetCanceledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	// Back to the free tier
	u, err := s.db.User.UpdateOneID(entSub.UserID).
		SetPlanKey("").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to downgrade user: %w", err)
	}

	if s.email != nil {
		subject, html, plain := buildSubscriptionCancelledEmail(u.Name, s.config.BaseURL)
		if err := s.email.SendEmail(u.Email, u.Name, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send cancellation email to %s: %v", u.Email, err)
		}
	}

	return nil
}

// handleInvoicePaid handles invoice.paid event
func (s *Service) handleInvoicePaid(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	log.Printf("💰 Invoice paid: %s, amount=%d", invoice.ID, invoice.AmountPaid)

	// Send renewal email notification for recurring invoices (not the first one)
	if s.email != nil && invoice.Subscription != nil && invoice.Subscription.ID != "" && invoice.BillingReason == stripe.InvoiceBillingReasonSubscriptionCycle {
		entSub, err := s.db.Subscription.Query().
			Where(subscription.StripeSubscriptionIDEQ(invoice.Subscription.ID)).
			Only(ctx)
		if err == nil {
			u, err := s.db.User.Get(ctx, entSub.UserID)
			if err == nil {
				nextBilling := time.Unix(invoice.PeriodEnd, 0).Format("2006-01-02")
				subject, html, plain := buildSubscriptionRenewedEmail(u.Name, entSub.PlanKey, nextBilling, s.config.BaseURL)
				if err := s.email.SendEmail(u.Email, u.Name, subject, html, plain); err != nil {
					log.Printf("⚠️  Failed to send renewal email to %s: %v", u.Email, err)
				}
			}
		}
	}

	return nil
}

// handleInvoicePaymentFailed handles invoice.payment_failed event
func (s *Service) handleInvoicePaymentFailed(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	log.Printf("⚠️  Invoice payment failed: %s", invoice.ID)

	if invoice.Subscription == nil || invoice.Subscription.ID == "" {
		log.Printf("⚠️  No subscription ID in failed invoice %s", invoice.ID)
		return nil
	}

	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(invoice.Subscription.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  Subscription not found for failed invoice: %s", invoice.Subscription.ID)
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	_, err = s.db.Subscription.UpdateOne(entSub).
		SetStatus(subscription.StatusPastDue).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update subscription to past_due: %w", err)
	}

	log.Printf("🔄 Subscription %s set to past_due due to payment failure", invoice.Subscription.ID)

	u, err := s.db.User.Get(ctx, entSub.UserID)
	if err != nil {
		log.Printf("⚠️  Failed to get user %d for payment failed notification: %v", entSub.UserID, err)
		return nil
	}

	if s.email != nil {
		subject, html, plain := buildPaymentFailedEmail(u.Name, s.config.BaseURL)
		if err := s.email.SendEmail(u.Email, u.Name, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send payment failed email to %s: %v", u.Email, err)
		}
	}

	if s.audit != nil {
		metadata := map[string]interface{}{
			"invoice_id":      invoice.ID,
			"subscription_id": invoice.Subscription.ID,
			"amount_due":      invoice.AmountDue,
		}
		if err := s.audit.LogPaymentFailed(entSub.UserID, invoice.Subscription.ID, metadata); err != nil {
			log.Printf("⚠️  Failed to log payment failed audit: %v", err)
		}
	}

	return nil
}
