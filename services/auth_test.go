package services

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sklyit/config"
	"sklyit/mail"
	"sklyit/models"
)

type recordingMailer struct {
	to   string
	code string
}

func (m *recordingMailer) SendResetPasswordEmail(to, code string) error {
	m.to = to
	m.code = code
	return nil
}

func userRow(t *testing.T, password string) *pgxmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return pgxmock.NewRows([]string{
		"user_id", "name", "gmail", "password_hash", "dob", "imgurl", "mobile_no",
		"wtapp_no", "gender", "address_city", "address_state", "usertype", "fcm_token", "date_of_joining",
	}).AddRow("u1", "Asha", "asha@example.com", string(hash), nil, nil, "9990001111",
		"9990001111", nil, "Pune", "MH", "business", nil, time.Now())
}

func newAuthFixture(t *testing.T, mailer *recordingMailer) (*AuthService, pgxmock.PgxPoolIface) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	users := NewUsersService(mock, nil, zerolog.Nop())
	var m mail.Mailer
	if mailer != nil {
		m = mailer
	}
	return NewAuthService(users, m, zerolog.Nop()), mock
}

func TestLoginAndRefresh(t *testing.T) {
	auth, mock := newAuthFixture(t, nil)

	mock.ExpectQuery("FROM users WHERE wtapp_no").
		WithArgs("asha@example.com").
		WillReturnRows(userRow(t, "secret1"))

	tokens, user, err := auth.Login(context.Background(), "asha@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	refreshed, err := auth.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, mock := newAuthFixture(t, nil)

	mock.ExpectQuery("FROM users WHERE wtapp_no").
		WithArgs("asha@example.com").
		WillReturnRows(userRow(t, "secret1"))

	_, _, err := auth.Login(context.Background(), "asha@example.com", "wrong")
	assert.Equal(t, models.ErrKindNotFound, models.KindOf(err))
}

func TestRefreshRejectsGarbage(t *testing.T) {
	auth, _ := newAuthFixture(t, nil)

	_, err := auth.Refresh("not-a-jwt")
	assert.Equal(t, models.ErrKindNotFound, models.KindOf(err))
}

func TestForgotPasswordSendsCode(t *testing.T) {
	mailer := &recordingMailer{}
	auth, mock := newAuthFixture(t, mailer)

	mock.ExpectQuery("FROM users WHERE gmail").
		WithArgs("asha@example.com").
		WillReturnRows(userRow(t, "secret1"))

	require.NoError(t, auth.ForgotPassword(context.Background(), "asha@example.com"))
	assert.Equal(t, "asha@example.com", mailer.to)
	assert.Len(t, mailer.code, 6)
	assert.True(t, auth.VerifyResetCode("asha@example.com", mailer.code))
	assert.False(t, auth.VerifyResetCode("asha@example.com", "000000x"))
}

func TestVerifyResetCodeExpires(t *testing.T) {
	auth, _ := newAuthFixture(t, nil)

	auth.mu.Lock()
	auth.resetCodes["asha@example.com"] = resetCode{code: "123456", expires: time.Now().Add(-time.Minute)}
	auth.mu.Unlock()

	assert.False(t, auth.VerifyResetCode("asha@example.com", "123456"))
}

func TestResetPasswordConsumesCode(t *testing.T) {
	auth, mock := newAuthFixture(t, nil)

	auth.mu.Lock()
	auth.resetCodes["asha@example.com"] = resetCode{code: "654321", expires: time.Now().Add(time.Minute)}
	auth.mu.Unlock()

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("asha@example.com", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, auth.ResetPassword(context.Background(), "asha@example.com", "654321", "brandnew1"))
	assert.False(t, auth.VerifyResetCode("asha@example.com", "654321"), "a consumed code must not verify again")
}
