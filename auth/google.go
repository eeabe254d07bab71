package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// ExternalIdentity is a user vouched for by a federated provider.
type ExternalIdentity struct {
	UID      string
	Email    string
	Name     string
	Picture  string
	Provider string
}

// GoogleVerifier checks Firebase ID tokens from the Google sign-in button.
type GoogleVerifier struct {
	client    *fbauth.Client
	projectID string
}

// NewGoogleVerifier initializes Firebase from a credentials JSON blob (no
// file on disk).
func NewGoogleVerifier(ctx context.Context, credsJSON, projectID string) (*GoogleVerifier, error) {
	opt := option.WithCredentialsJSON([]byte(credsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &GoogleVerifier{client: client, projectID: projectID}, nil
}

// Verify checks the token, its revocation state and audience.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*ExternalIdentity, error) {
	token, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		return nil, ErrInvalidToken
	}
	if token.Audience != v.projectID {
		log.Printf("❌ Token audience mismatch: got %q", token.Audience)
		return nil, ErrInvalidToken
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email not found in token")
	}
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)

	return &ExternalIdentity{
		UID:      token.UID,
		Email:    email,
		Name:     name,
		Picture:  picture,
		Provider: "google",
	}, nil
}
