package auth

import (
	"context"

	"rentahome/internal/apperr"

	"golang.org/x/exp/slices"
	"google.golang.org/api/idtoken"
)

const fallbackName = "Google User"

var trustedIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// GooglePayload is the normalized identity extracted from a verified
// Google ID token.
type GooglePayload struct {
	Email         string
	Name          string
	EmailVerified bool
}

// Verifier validates a third-party identity token and returns the
// normalized payload.
type Verifier interface {
	Verify(ctx context.Context, token string) (*GooglePayload, error)
}

// tokenValidator narrows the idtoken package to what GoogleVerifier needs,
// so tests can substitute a stub.
type tokenValidator interface {
	Validate(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

type googleValidator struct{}

func (googleValidator) Validate(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, token, audience)
}

// GoogleVerifier checks Google-issued ID tokens against a static audience
// allow-list. It holds its own configuration; nothing is read from
// process-wide state.
type GoogleVerifier struct {
	audiences []string
	validator tokenValidator
}

func NewGoogleVerifier(audiences []string) *GoogleVerifier {
	return &GoogleVerifier{audiences: audiences, validator: googleValidator{}}
}

// Verify validates signature, expiry, issuer and audience. Any failure
// collapses to the invalid_google_token code; the caller treats it
// uniformly as unauthorized.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*GooglePayload, error) {
	// Audience is checked against the allow-list below, so the single
	// audience argument stays empty here.
	payload, err := v.validator.Validate(ctx, token, "")
	if err != nil {
		return nil, apperr.New(apperr.CodeInvalidGoogleToken, "Invalid Google token")
	}

	if !slices.Contains(trustedIssuers, payload.Issuer) {
		return nil, apperr.New(apperr.CodeInvalidGoogleToken, "Invalid Google token")
	}

	if !slices.Contains(v.audiences, payload.Audience) {
		return nil, apperr.New(apperr.CodeInvalidGoogleToken, "Invalid Google token")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperr.New(apperr.CodeInvalidGoogleToken, "Invalid Google token")
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name, _ = payload.Claims["given_name"].(string)
	}
	if name == "" {
		name = fallbackName
	}

	emailVerified, _ := payload.Claims["email_verified"].(bool)

	return &GooglePayload{Email: email, Name: name, EmailVerified: emailVerified}, nil
}

var _ Verifier = (*GoogleVerifier)(nil)
