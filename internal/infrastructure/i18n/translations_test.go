package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogKeysRender(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, "⏰ Reminder: Practice tomorrow morning at 7 AM!", tr.T("en", "practice_reminder", nil))
	assert.Equal(t, "🥳 Happy Birthday, **Rob Wallace**! 🎂🎉",
		tr.T("en", "birthday_greeting", map[string]any{"Name": "Rob Wallace"}))
	assert.Equal(t, "2. Wednesday (2026-01-07) — ✅ Active",
		tr.T("en", "practice_menu_entry", map[string]any{
			"Index": 2, "Weekday": "Wednesday", "Date": "2026-01-07", "Status": "✅ Active",
		}))
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "no_such_key", tr.T("en", "no_such_key", nil))
}

func TestEmptyKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestUnknownLocaleFallsBackToDefault(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "❌ Cancelled without changes.", tr.T("fr", "practice_no_changes", nil))
}
