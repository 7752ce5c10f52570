package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/classify"
	"tacticlens/internal/handlers"
	"tacticlens/internal/metrics"
	"tacticlens/internal/models"
)

// ClassifyHandler classifies ad-hoc statements via JSON, using the
// session's dictionaries.
type ClassifyHandler struct {
	defaults []models.Tactic
}

// NewClassifyHandler creates a new API classify handler.
func NewClassifyHandler(defaults []models.Tactic) *ClassifyHandler {
	return &ClassifyHandler{defaults: defaults}
}

// classifyRequest is the JSON body for a classification call.
type classifyRequest struct {
	Statements []string `json:"statements"`
}

// Run classifies each statement independently against a snapshot of the
// session's tactics. A null or empty statement is legal and reports
// present=false for every tactic.
func (h *ClassifyHandler) Run(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session not available")
	}

	var req classifyRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Statements) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "statements is required")
	}

	tactics := handlers.LoadStore(sess, h.defaults).Tactics()

	start := time.Now()
	out := make([]models.StatementResult, len(req.Statements))
	results := make([][]models.TacticResult, len(req.Statements))
	for i, statement := range req.Statements {
		results[i] = classify.Text(statement, tactics)
		out[i] = models.StatementResult{Statement: statement, Results: results[i]}
	}
	metrics.RecordClassificationRun(len(req.Statements), results, time.Since(start))

	return jsonSuccess(c, out)
}
