package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/classify"
	"tacticlens/internal/config"
	"tacticlens/internal/datastore"
	"tacticlens/internal/metrics"
	"tacticlens/internal/models"
)

// ClassifyHandler runs a classification pass over the session's uploaded
// dataset.
type ClassifyHandler struct {
	cfg      *config.Config
	data     *datastore.Store
	defaults []models.Tactic
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(cfg *config.Config, data *datastore.Store, defaults []models.Tactic) *ClassifyHandler {
	return &ClassifyHandler{cfg: cfg, data: data, defaults: defaults}
}

// Run classifies the uploaded dataset against the current dictionaries and
// renders the results partial. The tactic list is snapshotted before the
// pass, so edits made while a pass runs apply to the next run, never to a
// partially annotated table.
func (h *ClassifyHandler) Run(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	id, _ := sess.Get(SessionDatasetKey).(string)
	if id == "" {
		return htmxError(c, "Upload a CSV before running classification")
	}

	table, err := h.data.Load(id)
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			sess.Delete(SessionDatasetKey)
			return htmxError(c, "The uploaded dataset has expired, please upload it again")
		}
		return err
	}

	tactics := LoadStore(sess, h.defaults).Tactics()

	start := time.Now()
	annotated, results, err := classify.Table(table, tactics, h.cfg.StatementColumn)
	if err != nil {
		if errors.Is(err, classify.ErrMissingColumn) {
			return htmxError(c, "No '"+h.cfg.StatementColumn+"' column found in the uploaded file")
		}
		return err
	}
	metrics.RecordClassificationRun(len(table.Rows), results, time.Since(start))

	resultID, err := h.data.Save(annotated)
	if err != nil {
		return err
	}
	sess.Set(SessionResultKey, resultID)

	return c.Render("partials/results", fiber.Map{
		"Result":      annotated.Preview(5),
		"ResultRows":  len(annotated.Rows),
		"TacticCount": len(tactics),
	}, "")
}
