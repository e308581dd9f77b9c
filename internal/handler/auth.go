package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arsalanh/quicknotes/internal/config"
	"github.com/arsalanh/quicknotes/internal/repository"
	"github.com/arsalanh/quicknotes/internal/utils"
)

// AuthHandler bundles dependencies for signup and login.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type signupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResp is returned by both signup and login: a fresh 1h bearer token
// plus the account id.
type authResp struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      int64  `json:"id"`
}

// Signup creates an account and returns a usable token immediately.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username, email, and password are required."})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username, email, and password are required."})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	// Optimistic pre-check. The unique constraint stays the final arbiter:
	// a race past this point comes back as ErrEmailExists from Create.
	exists, err := h.Users.EmailExists(ctx, req.Email)
	if err != nil {
		log.Printf("signup: email pre-check failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating user"})
	}
	if exists {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists."})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		log.Printf("signup: password hash failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating user"})
	}

	u, err := h.Users.Create(ctx, req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists."})
		}
		log.Printf("signup: insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating user"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID)
	if err != nil {
		log.Printf("signup: token issue failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating user"})
	}

	return c.JSON(http.StatusCreated, authResp{
		Message: "User created successfully",
		Token:   token,
		ID:      u.ID,
	})
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password produce byte-identical responses so the endpoint does not leak
// which accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required."})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required."})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
		}
		log.Printf("login: user lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in"})
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID)
	if err != nil {
		log.Printf("login: token issue failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in"})
	}

	return c.JSON(http.StatusOK, authResp{
		Message: "Login successful",
		Token:   token,
		ID:      u.ID,
	})
}
