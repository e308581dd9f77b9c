package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/arsalanh/quicknotes/internal/config"
	"github.com/arsalanh/quicknotes/internal/repository"
	"github.com/arsalanh/quicknotes/internal/utils"
)

const testSecret = "test-secret"

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{JWTSecret: testSecret, BcryptCost: bcrypt.MinCost}
	return NewAuthHandler(cfg, repository.NewUserRepo(db)), mock
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func userRows(id int64, username, email, hash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "username", "email", "password", "created_at", "updated_at"}).
		AddRow(id, username, email, hash, now, now)
}

func TestSignup_Success(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("u1@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u1", "u1@x.com", sqlmock.AnyArg()).
		WillReturnRows(userRows(12, "u1", "u1@x.com", "hash"))

	rec := postJSON(t, h.Signup, `{"username":"u1","email":"u1@x.com","password":"p123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, int64(12), resp.ID)

	// The returned token must verify straight back to the new account.
	uid, err := utils.ParseAccessToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(12), uid)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignup_MissingField(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h.Signup, `{"username":"u1","email":"u1@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username, email, and password are required.")
}

func TestSignup_DuplicateEmailPrecheck(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("u1@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rec := postJSON(t, h.Signup, `{"username":"u1","email":"u1@x.com","password":"p123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignup_RaceHitsUniqueConstraint(t *testing.T) {
	h, mock := newAuthHandler(t)

	// Pre-check misses the concurrent signup; the constraint violation from
	// the insert must map to the same conflict response, not a 500.
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("u1@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u1", "u1@x.com", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	rec := postJSON(t, h.Signup, `{"username":"u1","email":"u1@x.com","password":"p123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	h, mock := newAuthHandler(t)

	hash, err := utils.HashPassword("p123", bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT id, username, email, password`).
		WithArgs("u1@x.com").
		WillReturnRows(userRows(12, "u1", "u1@x.com", hash))

	rec := postJSON(t, h.Login, `{"email":"u1@x.com","password":"p123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)

	uid, err := utils.ParseAccessToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(12), uid)
}

func TestLogin_MissingField(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postJSON(t, h.Login, `{"email":"u1@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email and password are required.")
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	h, mock := newAuthHandler(t)

	// Unknown email.
	mock.ExpectQuery(`SELECT id, username, email, password`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)
	unknownRec := postJSON(t, h.Login, `{"email":"ghost@x.com","password":"p123"}`)

	// Known email, wrong password.
	hash, err := utils.HashPassword("correct-password", bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT id, username, email, password`).
		WithArgs("u1@x.com").
		WillReturnRows(userRows(12, "u1", "u1@x.com", hash))
	wrongRec := postJSON(t, h.Login, `{"email":"u1@x.com","password":"p123"}`)

	assert.Equal(t, http.StatusBadRequest, unknownRec.Code)
	assert.Equal(t, http.StatusBadRequest, wrongRec.Code)
	// Same status, same body: account existence must not leak.
	assert.Equal(t, unknownRec.Body.String(), wrongRec.Body.String())
	assert.Contains(t, wrongRec.Body.String(), "Invalid credentials")
}
