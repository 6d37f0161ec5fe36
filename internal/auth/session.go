package auth

import (
	"errors"
	"fmt"
	"time"

	"rentahome/internal/apperr"
	"rentahome/internal/models"
	"rentahome/internal/storage"

	"github.com/golang-jwt/jwt/v4"
)

// SessionIssuer creates and validates the signed session tokens handed to
// clients. Validity is a function of signature and expiry alone; there is
// no server-side revocation list.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
	db     storage.Database
}

func NewSessionIssuer(secret string, ttl time.Duration, db storage.Database) *SessionIssuer {
	return &SessionIssuer{secret: []byte(secret), ttl: ttl, db: db}
}

func (s *SessionIssuer) Issue(accountId string) (string, error) {
	claims := &models.CustomClaims{
		UserId: accountId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token signature and expiry and resolves the embedded
// account. Every failure mode maps to the same invalid_session code so a
// caller cannot distinguish an expired token from a deleted account.
// On success the profileComplete flag is recomputed and persisted.
func (s *SessionIssuer) Verify(tokenStr string) (models.Account, error) {
	if tokenStr == "" {
		return models.Account{}, apperr.New(apperr.CodeInvalidSession, "No token provided")
	}

	claims := &models.CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return models.Account{}, apperr.New(apperr.CodeInvalidSession, "Invalid token")
	}

	account, err := s.db.GetAccountById(claims.UserId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Account{}, apperr.New(apperr.CodeInvalidSession, "Invalid token")
		}
		return models.Account{}, err
	}

	if account.Suspended {
		return models.Account{}, apperr.New(apperr.CodeInvalidSession, "Invalid token")
	}

	account.ProfileComplete = account.CheckProfileComplete()
	if err := s.db.UpdateProfileComplete(account.Id, account.ProfileComplete); err != nil {
		return models.Account{}, err
	}

	return account, nil
}
