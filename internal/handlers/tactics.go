package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/config"
	"tacticlens/internal/dict"
	"tacticlens/internal/models"
	"tacticlens/internal/validation"
)

// TacticHandler handles the dictionary editor: listing, adding, updating
// and removing tactics in the session store. Every mutation re-renders the
// tactics list partial so HTMX can swap it in place.
type TacticHandler struct {
	cfg      *config.Config
	defaults []models.Tactic
}

// NewTacticHandler creates a new tactic handler.
func NewTacticHandler(cfg *config.Config, defaults []models.Tactic) *TacticHandler {
	return &TacticHandler{cfg: cfg, defaults: defaults}
}

// List renders the tactics list partial.
func (h *TacticHandler) List(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	return h.renderList(c, LoadStore(sess, h.defaults))
}

// Add creates a new tactic from the add form: a name and a comma-delimited
// keyword list.
func (h *TacticHandler) Add(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	name := c.FormValue("name")
	if ok, msg := validation.ValidateTacticName(name); !ok {
		return htmxError(c, msg)
	}

	store := LoadStore(sess, h.defaults)
	if err := store.AddTactic(name, dict.SplitKeywords(c.FormValue("keywords"))); err != nil {
		return h.storeError(c, err)
	}
	SaveStore(sess, store)

	return h.renderList(c, store)
}

// Update replaces the keyword list of an existing tactic. An empty keyword
// field is legal and turns the tactic into an always-false matcher.
func (h *TacticHandler) Update(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	store := LoadStore(sess, h.defaults)
	if err := store.SetKeywords(c.Params("name"), dict.SplitKeywords(c.FormValue("keywords"))); err != nil {
		return h.storeError(c, err)
	}
	SaveStore(sess, store)

	return h.renderList(c, store)
}

// Remove deletes a tactic from the store.
func (h *TacticHandler) Remove(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	store := LoadStore(sess, h.defaults)
	if err := store.RemoveTactic(c.Params("name")); err != nil {
		return h.storeError(c, err)
	}
	SaveStore(sess, store)

	return h.renderList(c, store)
}

// Reset explicitly restores the default dictionaries, discarding all edits.
// The store is never reset implicitly; this is the only path back.
func (h *TacticHandler) Reset(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	store := dict.NewFromTactics(h.defaults)
	SaveStore(sess, store)

	return h.renderList(c, store)
}

func (h *TacticHandler) renderList(c fiber.Ctx, store *dict.Store) error {
	return c.Render("partials/tactics_list", fiber.Map{
		"Tactics": store.Tactics(),
	}, "")
}

// storeError maps dictionary store errors to user-facing HTMX messages.
func (h *TacticHandler) storeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, dict.ErrDuplicateTactic):
		return htmxError(c, "That tactic name already exists")
	case errors.Is(err, dict.ErrInvalidName):
		return htmxError(c, "Please provide a name for the tactic")
	case errors.Is(err, dict.ErrUnknownTactic):
		return htmxError(c, "That tactic no longer exists")
	default:
		return err
	}
}
