package services

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"takatrack.com/bill-reminder-backend/models"
)

// FirestoreBillStore reads bills and user tokens from Firestore. All methods
// are read-only; the reminder jobs never write to the store.
type FirestoreBillStore struct {
	client *firestore.Client
}

func NewFirestoreBillStore(client *firestore.Client) *FirestoreBillStore {
	return &FirestoreBillStore{client: client}
}

// ActiveBills runs a collection-group query over every user's recurring_bills
// subcollection. Only isActive is filtered server-side; due dates are compared
// in-process because nextDueDate has no collection-group index.
func (s *FirestoreBillStore) ActiveBills(ctx context.Context) ([]models.RecurringBill, error) {
	iter := s.client.CollectionGroup("recurring_bills").
		Where("isActive", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var bills []models.RecurringBill
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate recurring_bills: %w", err)
		}

		var bill models.RecurringBill
		if err := doc.DataTo(&bill); err != nil {
			log.Printf("[BillStore] Skipping malformed bill %s: %v", doc.Ref.Path, err)
			continue
		}

		// users/{uid}/recurring_bills/{id} → owner is the grandparent document
		if parent := doc.Ref.Parent.Parent; parent != nil {
			bill.OwnerID = parent.ID
		}
		if bill.OwnerID == "" {
			log.Printf("[BillStore] Skipping bill with no owning user: %s", doc.Ref.Path)
			continue
		}

		bills = append(bills, bill)
	}

	return bills, nil
}

// UserTokens loads the owning user's registered device tokens. A missing user
// document is not an error: the caller skips that bill.
func (s *FirestoreBillStore) UserTokens(ctx context.Context, ownerID string) ([]string, error) {
	snap, err := s.client.Collection("users").Doc(ownerID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", ownerID, err)
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", ownerID, err)
	}

	return user.FCMTokens, nil
}
