package services

import (
	"context"
	"log"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	messagingClient *messaging.Client
	firestoreClient *firestore.Client
	once            sync.Once
	initError       error
)

func InitFirebase(projectID, credentialsPath string) error {
	once.Do(func() {
		ctx := context.Background()

		log.Printf("[FCM] Initializing Firebase | project=%s credentials=%s", projectID, credentialsPath)

		opt := option.WithCredentialsFile(credentialsPath)
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
		if err != nil {
			initError = err
			log.Printf("[FCM][ERROR] Failed to init Firebase app: %v", err)
			return
		}

		messagingClient, err = app.Messaging(ctx)
		if err != nil {
			initError = err
			log.Printf("[FCM][ERROR] Failed to get messaging client: %v", err)
			return
		}

		firestoreClient, err = app.Firestore(ctx)
		if err != nil {
			initError = err
			log.Printf("[FCM][ERROR] Failed to get Firestore client: %v", err)
			return
		}

		log.Println("[FCM] Firebase messaging and Firestore clients initialized successfully")
	})

	return initError
}

func GetMessagingClient() (*messaging.Client, error) {
	if messagingClient == nil {
		log.Printf("[FCM][ERROR] Messaging client is nil (initError=%v)", initError)
		return nil, initError
	}
	return messagingClient, nil
}

func GetFirestoreClient() (*firestore.Client, error) {
	if firestoreClient == nil {
		log.Printf("[FCM][ERROR] Firestore client is nil (initError=%v)", initError)
		return nil, initError
	}
	return firestoreClient, nil
}

func SendMulticastNotification(
	ctx context.Context,
	tokens []string,
	title, body string,
	data map[string]string,
) (int, int, error) {

	client, err := GetMessagingClient()
	if err != nil {
		return 0, 0, err
	}

	log.Printf(
		"[FCM] Sending multicast | tokens=%d title=%q",
		len(tokens),
		title,
	)

	// Log first token (helps debugging project mismatch)
	if len(tokens) > 0 {
		log.Printf("[FCM] Sample token: %s...", tokens[0][:min(10, len(tokens[0]))])
	}

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:   data,
		Tokens: tokens,
	}

	response, err := client.SendEachForMulticast(ctx, message)
	if err != nil {
		log.Printf("[FCM][ERROR] Multicast send failed entirely: %v", err)
		return 0, 0, err
	}

	log.Printf(
		"[FCM] Multicast result | success=%d failure=%d",
		response.SuccessCount,
		response.FailureCount,
	)

	for i, resp := range response.Responses {
		if resp.Success {
			continue
		}

		token := tokens[i]
		log.Printf(
			"[FCM][TOKEN ERROR] token=%s error=%v",
			token,
			resp.Error,
		)

		// Token registration lives outside this system, so dead tokens
		// are only reported here, never removed.
		if messaging.IsUnregistered(resp.Error) {
			log.Printf("[FCM] Token no longer registered: %s", token)
		}
	}

	return response.SuccessCount, response.FailureCount, nil
}

// FCMSender adapts the package-level send to the dispatcher's Notifier interface.
type FCMSender struct{}

func (FCMSender) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, error) {
	return SendMulticastNotification(ctx, tokens, title, body, data)
}
