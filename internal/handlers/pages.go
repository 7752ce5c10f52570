package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/config"
	"tacticlens/internal/datastore"
	"tacticlens/internal/models"
)

// PageHandler renders the main application pages.
type PageHandler struct {
	cfg      *config.Config
	data     *datastore.Store
	defaults []models.Tactic
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config, data *datastore.Store, defaults []models.Tactic) *PageHandler {
	return &PageHandler{cfg: cfg, data: data, defaults: defaults}
}

// Index renders the single-page classification flow: upload, dictionary
// editor, classify, download.
func (h *PageHandler) Index(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	store := LoadStore(sess, h.defaults)
	user, _ := c.Locals("user").(*models.User)

	data := MergeBranding(fiber.Map{
		"User":            user,
		"Tactics":         store.Tactics(),
		"TacticCount":     store.Len(),
		"StatementColumn": h.cfg.StatementColumn,
	}, h.cfg)

	if id, ok := sess.Get(SessionDatasetKey).(string); ok && id != "" {
		table, err := h.data.Load(id)
		switch {
		case err == nil:
			data["Dataset"] = table.Preview(5)
			data["DatasetRows"] = len(table.Rows)
		case errors.Is(err, datastore.ErrNotFound):
			// Upload expired; clear the stale reference.
			sess.Delete(SessionDatasetKey)
			sess.Delete(SessionResultKey)
		default:
			return err
		}
	}

	if id, ok := sess.Get(SessionResultKey).(string); ok && id != "" {
		if table, err := h.data.Load(id); err == nil {
			data["Result"] = table.Preview(5)
			data["ResultRows"] = len(table.Rows)
		} else if errors.Is(err, datastore.ErrNotFound) {
			sess.Delete(SessionResultKey)
		}
	}

	return c.Render("index", data)
}

// Login renders the login page.
func (h *PageHandler) Login(c fiber.Ctx) error {
	return c.Render("login", MergeBranding(fiber.Map{
		"OIDCEnabled": h.cfg.OIDCIssuer != "",
	}, h.cfg))
}
