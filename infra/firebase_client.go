package infra

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/cockroachdb/errors"
)

// InitializeFirebaseMessaging builds the FCM client used for push
// notifications. Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
func InitializeFirebaseMessaging(ctx context.Context, projectId string) *messaging.Client {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectId})
	if err != nil {
		panic(errors.Wrap(err, "error initializing firebase app"))
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		panic(errors.Wrap(err, "error getting Messaging client"))
	}

	return client
}
