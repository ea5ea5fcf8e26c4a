package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shukran/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AnonymousSignup handles POST /api/auth/anonymous.
//
// The app has no registration form: every account is created anonymously on
// first launch with a generated display name and a synthesized email address.
// The client stores only the returned token.
func (s *Server) AnonymousSignup(c *fiber.Ctx) error {
	var req struct {
		Language string `json:"language"`
	}
	// The body is optional; clients may post an empty object.
	_ = c.BodyParser(&req)

	lang := req.Language
	if lang == "" {
		lang = s.detector.Detect(c.Context(), c.IP())
	}

	// A random credential the client never sees. Anonymous accounts cannot
	// log back in with a password; the token is the only key.
	secret := uuid.New().String()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	id := uuid.New().String()
	user := &models.User{
		Username:    anonymousUsername(),
		Email:       fmt.Sprintf("anon-%s@shukran.local", id),
		Password:    string(hashedPassword),
		IsAnonymous: true,
		Language:    lang,
	}

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Session handles GET /api/auth/session. It validates the presented token
// (the auth middleware already did), returns the account, and rotates the
// token so long-lived installs never see theirs expire.
func (s *Server) Session(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// anonymousUsername produces a readable generated display name such as
// "quiet-otter-4821".
func anonymousUsername() string {
	adjective := strings.ToLower(gofakeit.AdjectiveDescriptive())
	animal := strings.ToLower(gofakeit.Animal())
	return fmt.Sprintf("%s-%s-%d", adjective, animal, gofakeit.Number(1000, 9999))
}

// generateToken creates a JWT token for the given user ID and username
func (s *Server) generateToken(userID uint, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"username": username,                               // Username (cached in token)
		"iss":      "shukran-api",                          // Issuer
		"aud":      "shukran-client",                       // Audience
		"exp":      now.Add(time.Hour * 24 * 30).Unix(),    // Expiration (30 days)
		"iat":      now.Unix(),                             // Issued at
		"nbf":      now.Unix(),                             // Not before
		"jti":      s.generateJTI(),                        // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
