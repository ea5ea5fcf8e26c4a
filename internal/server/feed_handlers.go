package server

import (
	"shukran/internal/models"
	"shukran/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?date=YYYY-MM-DD. The feed shows anonymized
// shared entries for one UTC calendar day, defaulting to today. Authentication
// is optional; signed-in callers get their like state on each item.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	date, err := validation.ParseFeedDate(c.Query("date"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	pubs, err := s.feedService.PublicEntriesForDate(c.Context(), date, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"date":    date.UTC().Format("2006-01-02"),
		"entries": pubs,
		"count":   len(pubs),
	})
}

// ToggleLike handles POST /api/feed/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.feedService.ToggleLike(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(status)
}

// GetLikeStatus handles GET /api/feed/:id/like
func (s *Server) GetLikeStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.feedService.LikeStatus(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(status)
}

// GetFavorites handles GET /api/favorites, listing every public entry the
// account has liked, newest first.
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	pubs, err := s.feedService.Favorites(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"entries": pubs,
		"count":   len(pubs),
	})
}

// GetLocale handles GET /api/locale, returning the UI language suggested for
// the caller's IP. Detection failures fall back to the configured default.
func (s *Server) GetLocale(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"language": s.detector.Detect(c.Context(), c.IP()),
	})
}
