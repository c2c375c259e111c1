package repositories

import (
	"crypto/rsa"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/models"
)

type JwtRepository struct {
	jwtSigningPrivateKey rsa.PrivateKey
}

// Claims embeds jwt.RegisteredClaims to carry expiry alongside the session
// credentials.
type Claims struct {
	Credentials dto.Credentials `json:"credentials"`
	jwt.RegisteredClaims
}

var ValidationAlgo = jwt.SigningMethodRS256

func NewJwtRepository(key *rsa.PrivateKey) *JwtRepository {
	return &JwtRepository{jwtSigningPrivateKey: *key}
}

func (repo *JwtRepository) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	claims := &Claims{
		Credentials: dto.AdaptCredentialsDto(creds),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "replyflow",
		},
	}

	token := jwt.NewWithClaims(ValidationAlgo, claims)
	return token.SignedString(&repo.jwtSigningPrivateKey)
}

func (repo *JwtRepository) ValidateToken(sessionToken string) (models.Credentials, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		method, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok || method != ValidationAlgo {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return &repo.jwtSigningPrivateKey.PublicKey, nil
	}

	token, err := jwt.ParseWithClaims(sessionToken, &Claims{}, keyFunc)
	if err != nil {
		return models.Credentials{}, errors.Join(
			models.UnAuthorizedError,
			errors.Wrap(err, "error parsing jwt token claims"),
		)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return dto.AdaptCredentials(claims.Credentials), nil
	}
	return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid session token")
}
