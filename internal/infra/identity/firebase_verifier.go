// Package identity provides verifiers for externally issued identity tokens.
package identity

import (
	"context"
	"fmt"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier creates an IdentityVerifier backed by Firebase Auth.
// The verifier checks ID tokens minted by the Firebase project named in the config.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase config is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken verifies a Firebase ID token and extracts the identity it attests.
// The token's revocation status is not checked; expiry and signature are.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	ident := &service.ExternalIdentity{
		ID:       token.UID,
		Provider: entity.ProviderTypeFirebase,
	}
	if email, ok := token.Claims["email"].(string); ok {
		ident.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		ident.Name = name
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		ident.EmailVerified = verified
	}

	return ident, nil
}

// GetProvider returns the identity provider type.
func (v *firebaseVerifier) GetProvider() entity.ProviderType {
	return entity.ProviderTypeFirebase
}
