package fcm

import (
	"context"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"push-console/internal/config"
)

// Sender is the slice of the FCM client the delivery gateway consumes.
// *messaging.Client satisfies it; tests substitute a fake.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

var (
	initOnce sync.Once
	client   *messaging.Client
	initErr  error
)

// NewSender initializes the Firebase app exactly once and returns the
// messaging client. Repeated calls return the existing instance.
func NewSender(cfg *config.Config) (Sender, error) {
	initOnce.Do(func() {
		ctx := context.Background()

		var fbConfig *firebase.Config
		if cfg.FirebaseProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		}

		app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
		if err != nil {
			initErr = err
			return
		}

		client, initErr = app.Messaging(ctx)
	})

	if initErr != nil {
		return nil, initErr
	}
	return client, nil
}
