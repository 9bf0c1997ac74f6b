package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/itech-net/student-portal-api/internal/models"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type mockStudentAuthRepo struct {
	student *models.Student
	err     error
}

func (m *mockStudentAuthRepo) FindByUsername(context.Context, string) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.student == nil {
		return nil, sql.ErrNoRows
	}
	copied := *m.student
	return &copied, nil
}

func newAuthTestService(repo *mockStudentAuthRepo) *AuthService {
	return NewAuthService(repo, validator.New(), zap.NewNop(), AuthConfig{
		AccessTokenSecret: "secret",
		AccessTokenExpiry: time.Hour,
		Issuer:            "student-portal-api",
	})
}

func asha(password string) *models.Student {
	return &models.Student{ID: "42", Username: "asha", NameContactID: "asha-9876", Password: password}
}

func TestAuthServiceLoginPlaintextRow(t *testing.T) {
	svc := newAuthTestService(&mockStudentAuthRepo{student: asha("pass123")})

	res, err := svc.Login(context.Background(), models.LoginRequest{Username: "asha", Password: "pass123"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "asha-9876", res.User.NameContactID)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.NotEmpty(t, res.AccessToken)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "asha-9876", claims.Subject)
	assert.Equal(t, "42", claims.StudentID)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthServiceLoginBcryptRow(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := newAuthTestService(&mockStudentAuthRepo{student: asha(string(hash))})

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "asha", Password: "pass123"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "asha", Password: string(hash)})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))
}

func TestAuthServiceLoginFailures(t *testing.T) {
	svc := newAuthTestService(&mockStudentAuthRepo{student: asha("pass123")})

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "asha", Password: "wrong"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, 401, appErr.Status)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "asha"})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	unknown := newAuthTestService(&mockStudentAuthRepo{})
	_, err = unknown.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "x"})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))

	broken := newAuthTestService(&mockStudentAuthRepo{err: errors.New("too many connections")})
	_, err = broken.Login(context.Background(), models.LoginRequest{Username: "asha", Password: "x"})
	assert.True(t, appErrors.Is(err, appErrors.ErrStorage))
}

func TestAuthServiceVerifyRejectsEmptyStoredSecret(t *testing.T) {
	svc := newAuthTestService(&mockStudentAuthRepo{student: asha("")})
	_, err := svc.Verify(context.Background(), "asha", "")
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))
}

func TestAuthServiceValidateTokenRejectsForeignTokens(t *testing.T) {
	svc := newAuthTestService(&mockStudentAuthRepo{})

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "asha-9876",
			Issuer:    "student-portal-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "asha-9876",
			Issuer:    "student-portal-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err = expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))

	_, err = svc.ValidateToken("not-a-token")
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))
}

func TestAuthServiceLogoutIsStateless(t *testing.T) {
	svc := newAuthTestService(&mockStudentAuthRepo{})
	res := svc.Logout(context.Background())
	assert.True(t, res.Success)
	assert.Equal(t, "Logged out successfully.", res.Message)
}
