package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/dict"
	"tacticlens/internal/handlers"
	"tacticlens/internal/models"
	"tacticlens/internal/validation"
)

// TacticHandler exposes the session dictionary store as a JSON API.
type TacticHandler struct {
	defaults []models.Tactic
}

// NewTacticHandler creates a new API tactic handler.
func NewTacticHandler(defaults []models.Tactic) *TacticHandler {
	return &TacticHandler{defaults: defaults}
}

// List returns the current dictionaries as an ordered tactic array.
func (h *TacticHandler) List(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session not available")
	}

	store := handlers.LoadStore(sess, h.defaults)
	return jsonSuccess(c, store.Tactics())
}

// Replace swaps the whole store for the structured mapping form:
// a JSON object of tactic name to keyword array, in the desired order.
func (h *TacticHandler) Replace(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session not available")
	}

	tactics, err := dict.ParseTactics(c.Body())
	if err != nil {
		switch {
		case errors.Is(err, dict.ErrInvalidName):
			return jsonError(c, fiber.StatusBadRequest, "tactic names must not be empty")
		default:
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	store := dict.New()
	for _, t := range tactics {
		if ok, msg := validation.ValidateTacticName(t.Name); !ok {
			return jsonError(c, fiber.StatusBadRequest, msg)
		}
		if err := store.AddTactic(t.Name, t.Keywords); err != nil {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	handlers.SaveStore(sess, store)

	return jsonSuccess(c, store.Tactics())
}

// addRequest is the JSON body for adding a single tactic.
type addRequest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Add inserts a single new tactic.
func (h *TacticHandler) Add(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session not available")
	}

	var req addRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if ok, msg := validation.ValidateTacticName(req.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	store := handlers.LoadStore(sess, h.defaults)
	if err := store.AddTactic(req.Name, req.Keywords); err != nil {
		if errors.Is(err, dict.ErrDuplicateTactic) {
			return jsonError(c, fiber.StatusConflict, "tactic already exists")
		}
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	handlers.SaveStore(sess, store)

	return jsonSuccess(c, store.Tactics())
}

// Remove deletes a tactic by name.
func (h *TacticHandler) Remove(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session not available")
	}

	store := handlers.LoadStore(sess, h.defaults)
	if err := store.RemoveTactic(c.Params("name")); err != nil {
		if errors.Is(err, dict.ErrUnknownTactic) {
			return jsonError(c, fiber.StatusNotFound, "tactic not found")
		}
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	handlers.SaveStore(sess, store)

	return jsonSuccess(c, store.Tactics())
}
