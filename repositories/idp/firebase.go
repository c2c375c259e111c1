package idp

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/replyflow/replyflow-backend/models"
)

type firebaseTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// FirebaseClient verifies identity-provider tokens and exposes best-effort
// session revocation.
type FirebaseClient struct {
	projectId string
	verifier  firebaseTokenVerifier
}

func NewFirebaseClient(projectId string, verifier firebaseTokenVerifier) *FirebaseClient {
	return &FirebaseClient{projectId: projectId, verifier: verifier}
}

func (c *FirebaseClient) Issuer() string {
	return "https://securetoken.google.com/" + c.projectId
}

func (c *FirebaseClient) VerifyToken(ctx context.Context, idToken string) (models.Identity, error) {
	token, err := c.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.Identity{}, fmt.Errorf("firebase VerifyIDToken error: %w", err)
	}
	if token.Issuer != c.Issuer() {
		return models.Identity{}, fmt.Errorf("invalid issuer %s for firebase token", token.Issuer)
	}
	if token.Firebase.SignInProvider == "password" && token.Claims["email_verified"] == false {
		return models.Identity{}, fmt.Errorf("email not verified: %w", models.UnAuthorizedError)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return models.Identity{}, fmt.Errorf("firebase token carries no email claim")
	}

	identity := models.Identity{Email: email}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.Picture = picture
	}
	return identity, nil
}

// RevokeSessions invalidates all refresh tokens of the account. Callers treat
// failures as best-effort: local state is already gone by the time this runs.
func (c *FirebaseClient) RevokeSessions(ctx context.Context, email string) error {
	record, err := c.verifier.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("firebase GetUserByEmail error: %w", err)
	}
	return c.verifier.RevokeRefreshTokens(ctx, record.UID)
}
