package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"takatrack.com/bill-reminder-backend/models"
)

const billReminderTitle = "Bill Reminder 💸"

// BillStore is what the dispatcher needs from the document store.
type BillStore interface {
	ActiveBills(ctx context.Context) ([]models.RecurringBill, error)
	UserTokens(ctx context.Context, ownerID string) ([]string, error)
}

// Notifier delivers one payload to a set of device tokens.
type Notifier interface {
	SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, error)
}

// SendBillReminderNotifications scans all active recurring bills, picks the
// ones due tomorrow in loc, and pushes one notification per bill to the
// owning user's devices. The returned error is the run's status for the
// invoking scheduler: a fetch failure aborts immediately, and any single
// lookup or send failure fails the whole run even though the remaining
// dispatches still complete first.
func SendBillReminderNotifications(ctx context.Context, store BillStore, sender Notifier, loc *time.Location) error {
	return runBillReminders(ctx, time.Now(), store, sender, loc)
}

func runBillReminders(ctx context.Context, now time.Time, store BillStore, sender Notifier, loc *time.Location) error {
	log.Printf("[BillReminder] Job started | now=%s zone=%s", now.In(loc).Format(time.RFC3339), loc)

	bills, err := store.ActiveBills(ctx)
	if err != nil {
		log.Printf("[BillReminder] Failed to fetch bills: %v", err)
		return fmt.Errorf("fetch active bills: %w", err)
	}

	var due []models.RecurringBill
	for _, bill := range bills {
		if !bill.IsActive {
			continue
		}
		if IsDueTomorrow(now, bill.NextDueDate, loc) {
			due = append(due, bill)
		}
	}

	log.Printf("[BillReminder] Fetched %d active bills, %d due tomorrow", len(bills), len(due))

	var sent, skipped, failed int64

	// One lookup+send per matching bill, all independent, joined at the end.
	// Plain Group, not WithContext: a failure must not cancel sends that are
	// already in flight.
	var g errgroup.Group
	for _, bill := range due {
		bill := bill
		g.Go(func() error {
			tokens, err := store.UserTokens(ctx, bill.OwnerID)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				log.Printf("[BillReminder] User lookup failed | owner=%s bill=%q: %v", bill.OwnerID, bill.Title, err)
				return fmt.Errorf("lookup user %s: %w", bill.OwnerID, err)
			}

			if len(tokens) == 0 {
				atomic.AddInt64(&skipped, 1)
				log.Printf("[BillReminder] No FCM tokens for owner %s, skipping bill %q", bill.OwnerID, bill.Title)
				return nil
			}

			success, failure, err := sender.SendToTokens(
				ctx,
				tokens,
				billReminderTitle,
				billReminderBody(bill),
				map[string]string{
					"type":     "bill_reminder",
					"owner_id": bill.OwnerID,
				},
			)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				log.Printf("[BillReminder] FCM error | owner=%s bill=%q: %v", bill.OwnerID, bill.Title, err)
				return fmt.Errorf("send reminder for %q to user %s: %w", bill.Title, bill.OwnerID, err)
			}

			atomic.AddInt64(&sent, 1)
			log.Printf(
				"[BillReminder] Owner %s bill %q → %d sent, %d failed",
				bill.OwnerID, bill.Title, success, failure,
			)
			return nil
		})
	}

	err = g.Wait()

	log.Printf(
		"[BillReminder] Job finished | due=%d sent=%d skipped=%d failed=%d",
		len(due),
		atomic.LoadInt64(&sent),
		atomic.LoadInt64(&skipped),
		atomic.LoadInt64(&failed),
	)

	return err
}

func billReminderBody(bill models.RecurringBill) string {
	return fmt.Sprintf("Don't forget to pay %s: ৳%s", bill.Title, formatAmount(bill.Amount))
}

// formatAmount renders 1200 as "1200" and 99.5 as "99.5", never "1200.00".
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
