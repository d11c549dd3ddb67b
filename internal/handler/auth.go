package handler

import (
	"context"  // request-scoped timeouts for DB calls
	"errors"   // errors.Is on repository sentinels
	"net/http" // HTTP status codes
	"strings"  // email normalization
	"time"     // timeouts and session expiry

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-hotel-booking/internal/config"
	"github.com/iliyamo/event-hotel-booking/internal/model"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
	"github.com/iliyamo/event-hotel-booking/internal/utils"
)

// UserStore is implemented by repository.UserRepo.
type UserStore interface {
	Create(ctx context.Context, email, password string, cost int) (int, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// SessionStore is implemented by repository.SessionRepo.
type SessionStore interface {
	Create(ctx context.Context, userID int, tokenHash string, exp time.Time) error
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Sessions SessionStore
	Log      logrus.FieldLogger
}

func NewAuthHandler(cfg config.Config, u UserStore, s SessionStore, log logrus.FieldLogger) *AuthHandler {
	if u == nil || s == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s, Log: log}
}

// ----- DTOs -----

type credentialsReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type userPart struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type signInResp struct {
	User  userPart `json:"user"`
	Token string   `json:"token"`
}

func (h *AuthHandler) bindCredentials(c echo.Context) (credentialsReq, bool) {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return req, false
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := c.Validate(&req); err != nil {
		return req, false
	}
	return req, true
}

// SignUp: create a user.  No session is opened; the client signs in next.
func (h *AuthHandler) SignUp(c echo.Context) error {
	req, ok := h.bindCredentials(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email and password (min 6) required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		h.Log.WithError(err).Error("create user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, userPart{ID: uid, Email: req.Email})
}

// SignIn: verify credentials, issue an access token and store its session.
func (h *AuthHandler) SignIn(c echo.Context) error {
	req, ok := h.bindCredentials(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email and password (min 6) required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		h.Log.WithError(err).Error("load user failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	if err := h.Sessions.Create(ctx, u.ID, utils.HashToken(access.Token), access.Exp); err != nil {
		h.Log.WithError(err).WithField("user_id", u.ID).Error("save session failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	return c.JSON(http.StatusOK, signInResp{
		User:  userPart{ID: u.ID, Email: u.Email},
		Token: access.Token,
	})
}
