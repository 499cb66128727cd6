package auth

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/payrollhq/payslip-backend-go/internal/domain/auth"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/database"
	"github.com/payrollhq/payslip-backend-go/internal/pkg/jwt"
	"github.com/payrollhq/payslip-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newAuthTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func createLoginUser(t *testing.T, ctx context.Context, db *database.DB, username, password, role string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	id := uuid.NewString()
	_, err = db.Exec(ctx, `
		INSERT INTO users (id, username, name, password_hash, role, monthly_salary)
		VALUES ($1, $2, 'Login Test User', $3, $4, 5000000)
	`, id, username, string(hash), role)
	require.NoError(t, err)
	return id
}

func newTestAuthService(db *database.DB) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(postgresql.NewUserRepository(db), jwtService)
}

func TestLogin(t *testing.T) {
	db := newAuthTestDB(t)
	ctx := context.Background()
	_, err := db.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)

	username := "login-" + uuid.NewString()[:8]
	userID := createLoginUser(t, ctx, db, username, "correct-horse", "employee")

	svc := newTestAuthService(db)
	result, err := svc.Login(ctx, auth.LoginRequest{Username: username, Password: "correct-horse"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, "employee", result.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newAuthTestDB(t)
	ctx := context.Background()
	_, err := db.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)

	username := "login-" + uuid.NewString()[:8]
	createLoginUser(t, ctx, db, username, "correct-horse", "employee")

	svc := newTestAuthService(db)
	_, err = svc.Login(ctx, auth.LoginRequest{Username: username, Password: "wrong-horse"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	db := newAuthTestDB(t)
	ctx := context.Background()
	_, err := db.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)

	svc := newTestAuthService(db)
	_, err = svc.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	db := newAuthTestDB(t)
	ctx := context.Background()

	svc := newTestAuthService(db)
	_, err := svc.Login(ctx, auth.LoginRequest{})
	assert.Error(t, err)
}
