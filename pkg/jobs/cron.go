package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vivasaude/vivasaude/pkg/audit"
	"github.com/vivasaude/vivasaude/pkg/coupons"
)

// Audit entries older than this are pruned by the weekly job.
const auditRetention = 180 * 24 * time.Hour

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	coupons *coupons.Service
	audit   *audit.Service
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(couponService *coupons.Service, auditService *audit.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		coupons: couponService,
		audit:   auditService,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 3 AM: retire coupons past their valid_until date
	_, err := cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running daily coupon expiry job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		n, err := cm.coupons.RetireExpired(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Failed to retire expired coupons: %v", err)
			return
		}

		if n == 0 {
			cm.logger.Println("✅ No expired coupons found")
			return
		}

		cm.logger.Printf("✅ Retired %d expired coupons", n)
	})

	if err != nil {
		return err
	}

	// Weekly on Sunday at 4 AM: prune old audit entries
	_, err = cm.cron.AddFunc("0 4 * * 0", func() {
		cm.logger.Println("🕐 Running weekly audit prune job...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		n, err := cm.audit.Prune(ctx, time.Now().Add(-auditRetention))
		if err != nil {
			cm.logger.Printf("❌ Failed to prune audit log: %v", err)
			return
		}

		cm.logger.Printf("✅ Pruned %d audit entries", n)
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// Start begins running scheduled jobs
func (cm *CronManager) Start() {
	cm.logger.Println("Starting cron scheduler...")
	cm.cron.Start()
}

// Stop gracefully stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("Stopping cron scheduler...")
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("Cron scheduler stopped")
}
