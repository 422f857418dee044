package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/icsts-conf/registration-api/internal/config"
	"gorm.io/gorm"
)

const TokenDuration = 24 * time.Hour

type AuthHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{cfg: cfg, db: db}
}

// AuthInput carries the raw Cookie header into huma operations that need a
// session.
type AuthInput struct {
	Cookie string `header:"Cookie"`
}

type LoginInput struct {
	Body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
}

type LoginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

// HandleLogin checks the submitted credentials against the configured admin
// account and issues the session cookie.
func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	userOK := subtle.ConstantTimeCompare([]byte(input.Body.Username), []byte(h.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(input.Body.Password), []byte(h.cfg.AdminPassword)) == 1
	if h.cfg.AdminUsername == "" || !userOK || !passOK {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	token, err := h.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	out := &LoginOutput{
		SetCookie: http.Cookie{
			Name:     "auth_token",
			Value:    token,
			Expires:  time.Now().Add(TokenDuration),
			HttpOnly: true,
			Path:     "/",
		},
	}
	out.Body.Message = "Logged in"
	return out, nil
}

type SessionOutput struct {
	Body struct {
		Username string `json:"username"`
	}
}

// HandleSession reports whether the caller holds a valid session. The admin
// dashboard uses it to decide between content and the login page.
func (h *AuthHandler) HandleSession(ctx context.Context, input *AuthInput) (*SessionOutput, error) {
	if err := h.Authorize(input.Cookie); err != nil {
		return nil, err
	}
	out := &SessionOutput{}
	out.Body.Username = h.cfg.AdminUsername
	return out, nil
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize validates the session cookie carried in a raw Cookie header.
// It returns a huma 401 error on any failure, without distinguishing the
// cause to the caller.
func (h *AuthHandler) Authorize(cookieHeader string) error {
	tokenString, err := cookieValue(cookieHeader, "auth_token")
	if err != nil {
		return huma.Error401Unauthorized("Unauthorized")
	}

	token, err := h.parseToken(tokenString)
	if err != nil || !token.Valid {
		return huma.Error401Unauthorized("Unauthorized")
	}
	return nil
}

func (h *AuthHandler) parseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
}

func cookieValue(cookieHeader, name string) (string, error) {
	req := http.Request{Header: http.Header{"Cookie": []string{cookieHeader}}}
	cookie, err := req.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
