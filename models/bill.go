package models

import "time"

// RecurringBill lives in the recurring_bills subcollection under users/{uid}.
// OwnerID is filled from the document path, not from a field.
type RecurringBill struct {
	OwnerID     string    `firestore:"-" json:"owner_id"`
	Title       string    `firestore:"title" json:"title"`
	Amount      float64   `firestore:"amount" json:"amount"`
	NextDueDate time.Time `firestore:"nextDueDate" json:"next_due_date"`
	IsActive    bool      `firestore:"isActive" json:"is_active"`
}

type User struct {
	DisplayName string   `firestore:"displayName,omitempty" json:"display_name,omitempty"`
	Email       string   `firestore:"email,omitempty" json:"email,omitempty"`
	FCMTokens   []string `firestore:"fcmTokens" json:"fcm_tokens"`
}
