package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/config"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Role entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 bearer tokens carrying the user id in
// the subject and the role in a private claim.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(cfg config.JWT) *Tokens {
	return &Tokens{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

func (t *Tokens) Issue(userID int64, role entities.Role) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return token.SignedString(t.secret)
}

func (t *Tokens) Verify(raw string) (entities.Caller, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return entities.Caller{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return entities.Caller{}, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}

	switch c.Role {
	case entities.RoleCustomer, entities.RoleAdmin:
	default:
		return entities.Caller{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, c.Role)
	}

	return entities.Caller{UserID: userID, Role: c.Role}, nil
}
