package dict

import "tacticlens/internal/models"

// DefaultTactics returns the built-in seed dictionaries. The returned slice
// is freshly allocated on every call so callers may mutate it.
func DefaultTactics() []models.Tactic {
	return []models.Tactic{
		{
			Name: "urgency_marketing",
			Keywords: []string{
				"limited", "limited time", "limited run", "limited edition", "order now",
				"last chance", "hurry", "while supplies last", "before they're gone",
				"selling out", "selling fast", "act now", "don't wait", "today only",
				"expires soon", "final hours", "almost gone",
			},
		},
		{
			Name: "exclusive_marketing",
			Keywords: []string{
				"exclusive", "exclusively", "exclusive offer", "exclusive deal",
				"members only", "vip", "special access", "invitation only",
				"premium", "privileged", "limited access", "select customers",
				"insider", "private sale", "early access",
			},
		},
	}
}
