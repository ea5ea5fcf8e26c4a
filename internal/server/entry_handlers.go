package server

import (
	"shukran/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetEntries handles GET /api/entries. It loads the account's full journal,
// newest first, and refreshes the in-memory mirror as a side effect.
func (s *Server) GetEntries(c *fiber.Ctx) error {
	userID := currentUserID(c)

	entries, err := s.entryService.FetchEntries(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"count":   len(entries),
	})
}

// GetTodaysEntry handles GET /api/entries/today. The entry is null when
// nothing has been written yet today.
func (s *Server) GetTodaysEntry(c *fiber.Ctx) error {
	userID := currentUserID(c)

	entry, err := s.entryService.TodaysEntry(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"entry": entry,
	})
}

// CanAddToday handles GET /api/entries/can-add.
func (s *Server) CanAddToday(c *fiber.Ctx) error {
	userID := currentUserID(c)

	return c.JSON(fiber.Map{
		"can_add": s.entryService.CanAddEntryToday(c.Context(), userID),
	})
}

// CreateEntry handles POST /api/entries
func (s *Server) CreateEntry(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.entryService.AddEntry(c.Context(), currentUserID(c), req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateEntry handles PUT /api/entries/:id. Only the text can change; the
// entry's day and share state are not editable here.
func (s *Server) UpdateEntry(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.entryService.UpdateEntry(c.Context(), currentUserID(c), id, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(entry)
}

// DeleteEntry handles DELETE /api/entries/:id. Deleting a shared entry also
// removes its public copy and that copy's likes.
func (s *Server) DeleteEntry(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.entryService.DeleteEntry(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Entry deleted successfully",
	})
}

// ToggleShare handles POST /api/entries/:id/share, flipping the entry between
// private and anonymously shared.
func (s *Server) ToggleShare(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	entry, err := s.entryService.ToggleShare(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(entry)
}
