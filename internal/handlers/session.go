package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3/middleware/session"

	"tacticlens/internal/dict"
	"tacticlens/internal/models"
)

// Session keys. The session record, held in the middleware's server-side
// storage and referenced by the cookie's session ID, carries the serialized
// dictionary store and the datastore keys of the uploaded and annotated
// tables.
const (
	SessionDictKey    = "dictionaries"
	SessionDatasetKey = "dataset_id"
	SessionResultKey  = "result_id"
)

// LoadStore returns the session's dictionary store, seeding it with the
// given defaults on first use. Seeding happens at most once per session;
// afterwards the stored dictionaries are authoritative and user edits are
// never overwritten.
func LoadStore(sess *session.Middleware, defaults []models.Tactic) *dict.Store {
	if raw, ok := sess.Get(SessionDictKey).(string); ok && raw != "" {
		store := dict.New()
		if err := json.Unmarshal([]byte(raw), store); err == nil {
			return store
		}
		// A corrupt session value is unrecoverable; reseed rather than 500.
		log.Printf("session dictionaries corrupt, reseeding defaults")
	}

	store := dict.NewFromTactics(defaults)
	SaveStore(sess, store)
	return store
}

// SaveStore writes the dictionary store back into the session.
func SaveStore(sess *session.Middleware, store *dict.Store) {
	data, err := json.Marshal(store)
	if err != nil {
		log.Printf("failed to serialize dictionaries: %v", err)
		return
	}
	sess.Set(SessionDictKey, string(data))
}
