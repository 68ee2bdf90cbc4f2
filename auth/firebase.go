// Package auth wraps the external identity collaborator. Account
// verification lives in Firebase; this service only consumes the verified
// identity and issues its own short-lived JWT for the API surface.
package auth

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

// Init sets up the Firebase Admin client from FIREBASE_CREDENTIALS_JSON
// and FIREBASE_PROJECT_ID. Called once from main before routes are wired.
func Init(ctx context.Context) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		return fmt.Errorf("initializing Firebase app: %w", err)
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("getting Firebase Auth client: %w", err)
	}
	return nil
}

// verifyIDToken checks the token with Firebase, including revocation and
// audience, and returns the verified claims.
func verifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid or revoked ID token")
	}
	if token.Audience != projectID {
		return nil, fmt.Errorf("invalid token audience")
	}
	return token, nil
}
