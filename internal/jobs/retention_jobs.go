package jobs

import (
	"context"
	"time"

	"toolrental-pos/internal/logger"
)

// PurgeOldAgreements deletes archived agreements older than the configured
// retention window.
func (jr *JobRunner) PurgeOldAgreements() {
	jr.runWithRecovery("PurgeOldAgreements", func() {
		ctx := context.Background()
		retentionDays := jr.config.Retention.AgreementDays
		cutoff := time.Now().AddDate(0, 0, -retentionDays)

		purged, err := jr.archive.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge old agreements", "error", err)
			return
		}
		logger.Info("Purged old agreements", "count", purged, "retention_days", retentionDays)
	})
}

// LogDailySummary logs how many agreements were archived in the last day.
func (jr *JobRunner) LogDailySummary() {
	jr.runWithRecovery("LogDailySummary", func() {
		ctx := context.Background()
		since := time.Now().Add(-24 * time.Hour)

		count, err := jr.archive.CountCreatedSince(ctx, since)
		if err != nil {
			logger.Error("Failed to count recent agreements", "error", err)
			return
		}
		logger.Info("Daily checkout summary", "agreements_last_24h", count)
	})
}
