package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ExternalIdentity represents user information attested by an external identity provider.
type ExternalIdentity struct {
	ID            string              // Provider-specific user ID (the token's uid/sub claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The identity provider (firebase, email, ...)
	EmailVerified bool                // Whether the email is verified by the provider
}

// IdentityVerifier defines the interface for verifying externally issued ID tokens.
// The storefront delegates credential handling to the provider and only consumes
// the verified identity.
type IdentityVerifier interface {
	// VerifyIDToken verifies an ID token and returns the identity it attests.
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)

	// GetProvider returns the identity provider type.
	GetProvider() entity.ProviderType
}
