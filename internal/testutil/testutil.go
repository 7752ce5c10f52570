// Package testutil provides test utilities and helpers.
package testutil

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// NewSessionApp creates a Fiber app with the session middleware installed,
// mirroring the production middleware order for handlers that read and
// write session state.
func NewSessionApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)
	return app
}

// Do runs a request against the app, replaying any cookies from earlier
// responses, and returns the response together with its body.
func Do(t *testing.T, app *fiber.App, req *http.Request, cookies []*http.Cookie) (*http.Response, []byte) {
	t.Helper()

	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", req.Method, req.URL.Path, err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, body
}

// MergeCookies layers newer cookies over older ones so a test can carry a
// session across requests the way a browser would.
func MergeCookies(older, newer []*http.Cookie) []*http.Cookie {
	merged := make(map[string]*http.Cookie)
	for _, c := range older {
		merged[c.Name] = c
	}
	for _, c := range newer {
		merged[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(merged))
	for _, c := range merged {
		out = append(out, c)
	}
	return out
}
