package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pesquisa_pbr/internal/domain/entities"
	"pesquisa_pbr/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// IAuthUseCase implements the mock login flow: a credential lookup against
// the seeded users, returning a signed token the middleware can resolve back
// to a user. This is not a real auth protocol — there is no refresh, no
// revocation and the secret is static dev config.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	UserFromToken(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	store  interfaces.IStateStore
	secret []byte
	ttl    time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(st interfaces.IStateStore, secret string, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{store: st, secret: []byte(secret), ttl: ttl}
}

// Login resolves the credential against the current user collection. Only
// seeded accounts carry a password; everyone else cannot log in, exactly as
// the mock dataset intends.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user, ok := u.store.State().UserByEmail(email)
	if !ok || user.Password == "" || user.Password != password {
		return entities.User{}, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(u.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return entities.User{}, "", err
	}

	user.Password = ""
	return user, token, nil
}

// UserFromToken parses the token and resolves the user from the current
// snapshot, so role changes and deletions take effect on the next request.
func (u *AuthUseCase) UserFromToken(ctx context.Context, tokenString string) (entities.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.User{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return entities.User{}, ErrInvalidToken
	}

	user, ok := u.store.State().UserByID(sub)
	if !ok {
		return entities.User{}, ErrInvalidToken
	}
	user.Password = ""
	return user, nil
}
