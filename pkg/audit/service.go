package audit

import (
	"context"
	"time"

	"github.com/vivasaude/vivasaude/ent"
	"github.com/vivasaude/vivasaude/ent/auditlog"
)

// Event names recorded in the audit trail.
const (
	ActionUserLogin      = "user.login"
	ActionUserRegister   = "user.register"
	ActionCouponCreated  = "coupon.created"
	ActionCouponRetired  = "coupon.retired"
	ActionCouponRedeemed = "coupon.redeemed"
	ActionPaymentFailed  = "payment.failed"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID   int
	Action   string
	Resource string
	Metadata map[string]interface{}
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.AuditLog.Create().
		SetAction(entry.Action)

	if entry.UserID != 0 {
		create = create.SetUserID(entry.UserID)
	}
	if entry.Resource != "" {
		create = create.SetResource(entry.Resource)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// LogUserLogin logs a user login event
func (s *Service) LogUserLogin(ctx context.Context, userID int) error {
	return s.Log(ctx, LogEntry{
		UserID: userID,
		Action: ActionUserLogin,
	})
}

// LogUserRegister logs a user registration event
func (s *Service) LogUserRegister(ctx context.Context, userID int) error {
	return s.Log(ctx, LogEntry{
		UserID: userID,
		Action: ActionUserRegister,
	})
}

// LogCouponCreated logs a coupon creation event
func (s *Service) LogCouponCreated(ctx context.Context, userID int, code string) error {
	return s.Log(ctx, LogEntry{
		UserID:   userID,
		Action:   ActionCouponCreated,
		Resource: code,
	})
}

// LogCouponRetired logs a coupon retirement event
func (s *Service) LogCouponRetired(ctx context.Context, userID int, code string) error {
	return s.Log(ctx, LogEntry{
		UserID:   userID,
		Action:   ActionCouponRetired,
		Resource: code,
	})
}

// LogCouponRedeemed logs a coupon redemption at checkout
func (s *Service) LogCouponRedeemed(ctx context.Context, userID int, code string, metadata map[string]interface{}) error {
	return s.Log(ctx, LogEntry{
		UserID:   userID,
		Action:   ActionCouponRedeemed,
		Resource: code,
		Metadata: metadata,
	})
}

// Prune deletes audit entries older than the retention window
func (s *Service) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	return s.db.AuditLog.Delete().
		Where(auditlog.CreatedAtLT(olderThan)).
		Exec(ctx)
}

// LogPaymentFailed logs a failed invoice payment
func (s *Service) LogPaymentFailed(ctx context.Context, userID int, subscriptionID string, metadata map[string]interface{}) error {
	return s.Log(ctx, LogEntry{
		UserID:   userID,
		Action:   ActionPaymentFailed,
		Resource: subscriptionID,
		Metadata: metadata,
	})
}
