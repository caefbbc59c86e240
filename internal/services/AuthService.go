package services

import (
	"errors"
	"fmt"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/storage"
	"portfolio/internal/structures"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrNotSignedIn        = errors.New("not signed in")
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`

	jwtlib.RegisteredClaims
}

type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      models.AdminUser `json:"user"`
}

type AuthServiceInterface interface {
	Login(email, password string) (*LoginResult, error)
	Logout() error
	CurrentUser() (*models.AdminUser, error)
	Authenticate(token string) (*models.AdminUser, error)
}

// AuthService signs in the single configured administrator. The signed-in
// identity is cached in the key-value store; logging out removes it, which
// also invalidates every token issued before.
type AuthService struct {
	admin  structures.AdminAccount
	secret []byte
	ttl    time.Duration
	store  storage.KeyValueStore
	logger providers.Logger
	now    func() time.Time
}

func NewAuthService(conf *structures.Config, store storage.KeyValueStore, logger providers.Logger) AuthServiceInterface {
	return &AuthService{
		admin:  conf.Auth.Admin,
		secret: []byte(conf.Auth.JwtSecret),
		ttl:    conf.Auth.TokenTTL,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (a *AuthService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || a.admin.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if email != strings.ToLower(a.admin.Email) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(password)); err != nil {
		a.logger.Warnf(providers.TypeWrite, "Failed sign-in for %s", email)
		return nil, ErrInvalidCredentials
	}

	user := a.identity()
	token, exp, err := a.sign(user)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("unable to encode identity: %w", err)
	}
	if err := a.store.Set(storage.KeyAdminUser, data); err != nil {
		return nil, fmt.Errorf("unable to store identity: %w", err)
	}

	a.logger.Infof(providers.TypeWrite, "Admin %s signed in", user.Email)
	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func (a *AuthService) Logout() error {
	if err := a.store.Delete(storage.KeyAdminUser); err != nil {
		return fmt.Errorf("unable to clear identity: %w", err)
	}
	a.logger.Infof(providers.TypeWrite, "Admin signed out")
	return nil
}

// CurrentUser returns the cached identity record, or ErrNotSignedIn.
func (a *AuthService) CurrentUser() (*models.AdminUser, error) {
	data, err := a.store.Get(storage.KeyAdminUser)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("unable to read identity: %w", err)
	}

	var user models.AdminUser
	if err := json.Unmarshal(data, &user); err != nil {
		a.logger.Errorf(providers.TypeApp, "Stored identity is corrupt: %s", err)
		return nil, ErrNotSignedIn
	}
	return &user, nil
}

// Authenticate validates a bearer token against the signing secret and the
// cached identity.
func (a *AuthService) Authenticate(token string) (*models.AdminUser, error) {
	claims, err := a.validate(token)
	if err != nil {
		return nil, err
	}

	user, err := a.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user.ID != claims.Subject {
		return nil, ErrNotSignedIn
	}
	return user, nil
}

func (a *AuthService) identity() models.AdminUser {
	id := a.admin.ID
	if id == "" {
		id = "admin"
	}
	return models.AdminUser{
		ID:       id,
		Username: a.admin.Username,
		Email:    a.admin.Email,
		Role:     a.admin.Role,
	}
}

func (a *AuthService) sign(user models.AdminUser) (string, time.Time, error) {
	if len(a.secret) == 0 || a.ttl <= 0 {
		return "", time.Time{}, ErrTokenInvalid
	}

	now := a.now().UTC()
	exp := now.Add(a.ttl)
	c := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
			Subject:   user.ID,
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("unable to sign token: %w", err)
	}
	return signed, exp, nil
}

func (a *AuthService) validate(token string) (*Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(a.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	return &c, nil
}
