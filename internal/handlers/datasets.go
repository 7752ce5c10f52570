package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/classify"
	"tacticlens/internal/config"
	"tacticlens/internal/dataset"
	"tacticlens/internal/datastore"
	"tacticlens/internal/metrics"
)

// DatasetHandler handles CSV upload and annotated download.
type DatasetHandler struct {
	cfg  *config.Config
	data *datastore.Store
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(cfg *config.Config, data *datastore.Store) *DatasetHandler {
	return &DatasetHandler{cfg: cfg, data: data}
}

// Upload accepts a multipart CSV upload, stores the parsed table, and
// renders the preview partial.
func (h *DatasetHandler) Upload(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return htmxError(c, "Please choose a CSV file to upload")
	}
	if fh.Size > h.cfg.MaxUploadBytes {
		return htmxError(c, "File is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return htmxError(c, "Could not read the uploaded file")
	}
	defer f.Close()

	table, err := dataset.ReadCSV(io.LimitReader(f, h.cfg.MaxUploadBytes))
	if err != nil {
		if errors.Is(err, dataset.ErrEmpty) {
			return htmxError(c, "The uploaded file has no header row")
		}
		return htmxError(c, "Error reading CSV: "+err.Error())
	}

	id, err := h.data.Save(table)
	if err != nil {
		return err
	}
	sess.Set(SessionDatasetKey, id)
	// A new upload invalidates any previous classification result.
	sess.Delete(SessionResultKey)

	metrics.RecordUpload()

	return c.Render("partials/preview", fiber.Map{
		"Dataset":         table.Preview(5),
		"DatasetRows":     len(table.Rows),
		"StatementColumn": h.cfg.StatementColumn,
		"MissingColumn":   !classify.HasStatementColumn(table.Columns, h.cfg.StatementColumn),
	}, "")
}

// Download streams the annotated table as a CSV attachment.
func (h *DatasetHandler) Download(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	id, _ := sess.Get(SessionResultKey).(string)
	if id == "" {
		return fiber.NewError(fiber.StatusNotFound, "no classified dataset to download")
	}

	table, err := h.data.Load(id)
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			sess.Delete(SessionResultKey)
			return fiber.NewError(fiber.StatusNotFound, "classified dataset has expired, run classification again")
		}
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="classified_output.csv"`)
	return table.WriteCSV(c.Response().BodyWriter())
}
