package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"tacticlens/internal/handlers/api"
	"tacticlens/internal/models"
	"tacticlens/internal/testutil"
)

var apiDefaults = []models.Tactic{
	{Name: "urgency_marketing", Keywords: []string{"hurry", "act now"}},
	{Name: "exclusive_marketing", Keywords: []string{"vip"}},
}

func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()

	app := testutil.NewSessionApp(t)

	tactics := api.NewTacticHandler(apiDefaults)
	classifier := api.NewClassifyHandler(apiDefaults)

	app.Get("/api/tactics", tactics.List)
	app.Put("/api/tactics", tactics.Replace)
	app.Post("/api/tactics", tactics.Add)
	app.Delete("/api/tactics/:name", tactics.Remove)
	app.Post("/api/classify", classifier.Run)

	return app
}

type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, body)
	}
	return env
}

func decodeTactics(t *testing.T, body []byte) []models.Tactic {
	t.Helper()
	env := decodeEnvelope(t, body)
	if env.Status != "ok" {
		t.Fatalf("status = %q, error = %q", env.Status, env.Error)
	}
	var tactics []models.Tactic
	if err := json.Unmarshal(env.Data, &tactics); err != nil {
		t.Fatalf("data is not a tactic list: %v\n%s", err, env.Data)
	}
	return tactics
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestListReturnsSeededDefaults(t *testing.T) {
	app := newAPIApp(t)

	resp, body := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/api/tactics", nil), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	tactics := decodeTactics(t, body)
	if len(tactics) != 2 || tactics[0].Name != "urgency_marketing" || tactics[1].Name != "exclusive_marketing" {
		t.Errorf("tactics = %v, want seeded defaults in order", tactics)
	}
}

func TestReplaceSwapsStoreAndPreservesOrder(t *testing.T) {
	app := newAPIApp(t)

	payload := `{"scarcity": ["rare", "few left"], "social_proof": ["bestseller"]}`
	resp, body := testutil.Do(t, app, jsonRequest(http.MethodPut, "/api/tactics", payload), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("replace status = %d: %s", resp.StatusCode, body)
	}

	tactics := decodeTactics(t, body)
	if len(tactics) != 2 || tactics[0].Name != "scarcity" || tactics[1].Name != "social_proof" {
		t.Fatalf("tactics after replace = %v, want document order kept", tactics)
	}

	// The replacement must stick for the session.
	_, body = testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/api/tactics", nil), resp.Cookies())
	tactics = decodeTactics(t, body)
	if len(tactics) != 2 || tactics[0].Name != "scarcity" {
		t.Errorf("tactics on next request = %v, want the replacement", tactics)
	}
}

func TestReplaceRejectsMalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"a": ["x"`},
		{"array instead of object", `["a"]`},
		{"keywords not an array", `{"a": "x, y"}`},
		{"empty tactic name", `{"  ": ["x"]}`},
		{"comma in name", `{"a,b": ["x"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAPIApp(t)
			resp, body := testutil.Do(t, app, jsonRequest(http.MethodPut, "/api/tactics", tt.body), nil)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", resp.StatusCode, body)
			}
			if env := decodeEnvelope(t, body); env.Status != "error" || env.Error == "" {
				t.Errorf("envelope = %+v, want error with a message", env)
			}
		})
	}
}

func TestAddTactic(t *testing.T) {
	app := newAPIApp(t)

	resp, body := testutil.Do(t, app,
		jsonRequest(http.MethodPost, "/api/tactics", `{"name": "scarcity", "keywords": ["rare"]}`), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	tactics := decodeTactics(t, body)
	if len(tactics) != 3 || tactics[2].Name != "scarcity" {
		t.Errorf("tactics = %v, want scarcity appended", tactics)
	}
}

func TestAddDuplicateConflicts(t *testing.T) {
	app := newAPIApp(t)

	resp, body := testutil.Do(t, app,
		jsonRequest(http.MethodPost, "/api/tactics", `{"name": "urgency_marketing", "keywords": ["x"]}`), nil)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("status = %d, want 409: %s", resp.StatusCode, body)
	}
}

func TestRemoveTactic(t *testing.T) {
	app := newAPIApp(t)

	resp, body := testutil.Do(t, app,
		httptest.NewRequest(http.MethodDelete, "/api/tactics/urgency_marketing", nil), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	tactics := decodeTactics(t, body)
	if len(tactics) != 1 || tactics[0].Name != "exclusive_marketing" {
		t.Errorf("tactics = %v, want only exclusive_marketing left", tactics)
	}
}

func TestRemoveUnknownTactic(t *testing.T) {
	app := newAPIApp(t)

	resp, _ := testutil.Do(t, app,
		httptest.NewRequest(http.MethodDelete, "/api/tactics/nonexistent", nil), nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestClassifyStatements(t *testing.T) {
	app := newAPIApp(t)

	payload := `{"statements": ["HURRY, vip seats only", "plain statement", ""]}`
	resp, body := testutil.Do(t, app, jsonRequest(http.MethodPost, "/api/classify", payload), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}

	env := decodeEnvelope(t, body)
	var out []models.StatementResult
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("data is not a result list: %v\n%s", err, env.Data)
	}
	if len(out) != 3 {
		t.Fatalf("got %d results, want 3", len(out))
	}

	first := out[0]
	if len(first.Results) != 2 {
		t.Fatalf("first statement has %d tactic results, want 2", len(first.Results))
	}
	if !first.Results[0].Present || first.Results[0].Matches[0] != "hurry" {
		t.Errorf("urgency result = %+v, want hurry matched", first.Results[0])
	}
	if !first.Results[1].Present || first.Results[1].Matches[0] != "vip" {
		t.Errorf("exclusive result = %+v, want vip matched", first.Results[1])
	}

	for i, res := range out[1].Results {
		if res.Present || res.Count != 0 {
			t.Errorf("plain statement result %d = %+v, want absent", i, res)
		}
	}
	for i, res := range out[2].Results {
		if res.Present {
			t.Errorf("empty statement result %d = %+v, want absent", i, res)
		}
	}
}

func TestClassifyUsesSessionEdits(t *testing.T) {
	app := newAPIApp(t)

	resp, _ := testutil.Do(t, app,
		jsonRequest(http.MethodPut, "/api/tactics", `{"only": ["special phrase"]}`), nil)

	_, body := testutil.Do(t, app,
		jsonRequest(http.MethodPost, "/api/classify", `{"statements": ["a very Special Phrase indeed"]}`),
		resp.Cookies())

	env := decodeEnvelope(t, body)
	var out []models.StatementResult
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("data is not a result list: %v", err)
	}
	if len(out) != 1 || len(out[0].Results) != 1 {
		t.Fatalf("results = %v, want a single tactic result", out)
	}
	if out[0].Results[0].Tactic != "only" || !out[0].Results[0].Present {
		t.Errorf("result = %+v, want the session's replacement dictionary used", out[0].Results[0])
	}
}

func TestClassifyRejectsMissingStatements(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"empty array", `{"statements": []}`},
		{"not json", `statements=hi`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAPIApp(t)
			resp, _ := testutil.Do(t, app, jsonRequest(http.MethodPost, "/api/classify", tt.body), nil)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
