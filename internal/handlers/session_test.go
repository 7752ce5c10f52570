package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/dict"
	"tacticlens/internal/handlers"
	"tacticlens/internal/models"
	"tacticlens/internal/testutil"
)

var testDefaults = []models.Tactic{
	{Name: "urgency_marketing", Keywords: []string{"hurry", "act now"}},
	{Name: "exclusive_marketing", Keywords: []string{"vip"}},
}

// newStoreApp wires minimal routes around LoadStore/SaveStore so the
// serialized dictionary store can be exercised across requests.
func newStoreApp(t *testing.T) *fiber.App {
	t.Helper()

	app := testutil.NewSessionApp(t)

	app.Get("/names", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		store := handlers.LoadStore(sess, testDefaults)
		names := make([]string, 0, store.Len())
		for _, tactic := range store.Tactics() {
			names = append(names, tactic.Name)
		}
		return c.SendString(strings.Join(names, ","))
	})

	app.Post("/add/:name", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		store := handlers.LoadStore(sess, testDefaults)
		if err := store.AddTactic(c.Params("name"), []string{"kw"}); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		handlers.SaveStore(sess, store)
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Post("/corrupt", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		sess.Set(handlers.SessionDictKey, "{not json")
		return c.SendStatus(fiber.StatusNoContent)
	})

	return app
}

func TestLoadStoreSeedsDefaultsOnFirstUse(t *testing.T) {
	app := newStoreApp(t)

	req := httptest.NewRequest(http.MethodGet, "/names", nil)
	_, body := testutil.Do(t, app, req, nil)

	if got := string(body); got != "urgency_marketing,exclusive_marketing" {
		t.Errorf("first request names = %q, want seeded defaults", got)
	}
}

func TestStoreSurvivesAcrossRequests(t *testing.T) {
	app := newStoreApp(t)

	resp, _ := testutil.Do(t, app, httptest.NewRequest(http.MethodPost, "/add/scarcity", nil), nil)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("add status = %d", resp.StatusCode)
	}
	cookies := resp.Cookies()

	_, body := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/names", nil), cookies)
	if got := string(body); got != "urgency_marketing,exclusive_marketing,scarcity" {
		t.Errorf("names after add = %q, want the edit to persist", got)
	}
}

func TestSeedingHappensOnlyOnce(t *testing.T) {
	// Removing a default and coming back must not resurrect it.
	app := testutil.NewSessionApp(t)
	app.Get("/drop-then-list", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		store := handlers.LoadStore(sess, testDefaults)
		_ = store.RemoveTactic("urgency_marketing")
		handlers.SaveStore(sess, store)
		return c.SendString(fmt.Sprint(store.Len()))
	})
	app.Get("/count", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		store := handlers.LoadStore(sess, testDefaults)
		return c.SendString(fmt.Sprint(store.Len()))
	})

	resp, body := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/drop-then-list", nil), nil)
	if string(body) != "1" {
		t.Fatalf("count after drop = %q, want 1", body)
	}

	_, body = testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/count", nil), resp.Cookies())
	if string(body) != "1" {
		t.Errorf("count on next request = %q, want 1 (defaults must not reseed)", body)
	}
}

func TestCorruptSessionValueReseedsDefaults(t *testing.T) {
	app := newStoreApp(t)

	resp, _ := testutil.Do(t, app, httptest.NewRequest(http.MethodPost, "/corrupt", nil), nil)

	_, body := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/names", nil), resp.Cookies())
	if got := string(body); got != "urgency_marketing,exclusive_marketing" {
		t.Errorf("names after corruption = %q, want reseeded defaults", got)
	}
}

func TestSaveStoreRoundTripPreservesKeywordCase(t *testing.T) {
	store := dict.New()
	if err := store.AddTactic("Mixed", []string{"VIP", "Act Now"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app := testutil.NewSessionApp(t)
	app.Post("/save", func(c fiber.Ctx) error {
		handlers.SaveStore(session.FromContext(c), store)
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/keywords", func(c fiber.Ctx) error {
		loaded := handlers.LoadStore(session.FromContext(c), nil)
		tactic, ok := loaded.Get("Mixed")
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "missing")
		}
		return c.SendString(strings.Join(tactic.Keywords, "|"))
	})

	resp, _ := testutil.Do(t, app, httptest.NewRequest(http.MethodPost, "/save", nil), nil)
	_, body := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/keywords", nil), resp.Cookies())

	if got := string(body); got != "VIP|Act Now" {
		t.Errorf("keywords after round trip = %q, want original case kept", got)
	}
}
