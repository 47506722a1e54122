package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// CompletePastDueRentals closes out ACTIVE rentals whose end date has passed,
// releasing each vehicle back to the fleet.
func (jr *JobRunner) CompletePastDueRentals() {
	jr.runWithRecovery("CompletePastDueRentals", func() {
		ctx := context.Background()

		due, err := jr.rentalRepo.ListActiveEndingBefore(ctx, jr.clock.Now())
		if err != nil {
			logger.Error("Failed to list past-due rentals", "error", err)
			return
		}

		completed := 0
		for _, rt := range due {
			if _, err := jr.rentalSvc.Complete(ctx, rt.ID); err != nil {
				logger.Error("Failed to complete rental", "rental_id", rt.ID, "error", err)
				continue
			}
			completed++
		}
		logger.Info("Past-due rentals processed", "due", len(due), "completed", completed)
	})
}

// SendReturnReminders emails customers whose return is due within the next
// 24 hours. Delivery failures are logged and skipped.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		now := jr.clock.Now()

		upcoming, err := jr.rentalRepo.ListActiveEndingBefore(ctx, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list upcoming returns", "error", err)
			return
		}

		sent := 0
		for _, rt := range upcoming {
			if rt.EndDate.Before(now) {
				// Already past due; CompletePastDueRentals owns it.
				continue
			}
			customer, err := jr.customerRepo.GetByID(ctx, rt.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			vehicle, err := jr.vehicleRepo.GetByID(ctx, rt.VehicleID)
			if err != nil {
				logger.Error("Failed to load vehicle for reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			if err := jr.notifier.SendReturnReminder(ctx, customer.Email, customer.Name, vehicle.Plate, rt.EndDate); err != nil {
				logger.Error("Failed to send return reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Return reminders processed", "candidates", len(upcoming), "sent", sent)
	})
}
