package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"

	"sklyit/config"
	"sklyit/mail"
	"sklyit/models"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	resetCodeTTL    = 10 * time.Minute
)

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type resetCode struct {
	code    string
	expires time.Time
}

// AuthService issues JWTs and drives the password-reset flow.
type AuthService struct {
	users  *UsersService
	mailer mail.Mailer
	log    zerolog.Logger

	mu         sync.Mutex
	resetCodes map[string]resetCode
}

func NewAuthService(users *UsersService, mailer mail.Mailer, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		mailer:     mailer,
		log:        log,
		resetCodes: make(map[string]resetCode),
	}
}

func signToken(userID string, ttl time.Duration) (string, error) {
	claims := models.JwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// Login validates credentials and returns an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, userID, password string) (*TokenPair, *models.User, error) {
	u, err := s.users.ValidateUser(ctx, userID, password)
	if err != nil {
		return nil, nil, err
	}
	access, err := signToken(u.UserID, accessTokenTTL)
	if err != nil {
		return nil, nil, models.Upstream("could not sign token", err)
	}
	refresh, err := signToken(u.UserID, refreshTokenTTL)
	if err != nil {
		return nil, nil, models.Upstream("could not sign token", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, u, nil
}

// Refresh validates a refresh token and issues a fresh pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, models.NotFound("session")
	}
	access, err := signToken(claims.UserID, accessTokenTTL)
	if err != nil {
		return nil, models.Upstream("could not sign token", err)
	}
	refresh, err := signToken(claims.UserID, refreshTokenTTL)
	if err != nil {
		return nil, models.Upstream("could not sign token", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ForgotPassword emails a 6-digit reset code to the account's address. The
// code is kept in memory and expires after ten minutes.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return err
	}
	if s.mailer == nil {
		return models.Upstream("password reset email is not configured", nil)
	}
	code, err := generateResetCode()
	if err != nil {
		return models.Upstream("could not generate reset code", err)
	}
	s.mu.Lock()
	s.resetCodes[email] = resetCode{code: code, expires: time.Now().Add(resetCodeTTL)}
	s.mu.Unlock()

	if err := s.mailer.SendResetPasswordEmail(email, code); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to send reset email")
		return models.Upstream("failed to send reset email", err)
	}
	return nil
}

// VerifyResetCode reports whether the code matches the one on file and has
// not expired.
func (s *AuthService) VerifyResetCode(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rc, ok := s.resetCodes[email]
	if !ok || time.Now().After(rc.expires) {
		delete(s.resetCodes, email)
		return false
	}
	return rc.code == code
}

// ResetPassword consumes a valid reset code and stores the new password.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if !s.VerifyResetCode(email, code) {
		return models.NotFound("reset code")
	}
	if err := s.users.UpdatePassword(ctx, email, newPassword); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.resetCodes, email)
	s.mu.Unlock()
	return nil
}
