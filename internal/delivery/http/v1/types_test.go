package v1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListUnmarshal(t *testing.T) {
	t.Run("Should accept a JSON array", func(t *testing.T) {
		var s StringList
		err := json.Unmarshal([]byte(`["Go", " SQL ", ""]`), &s)
		assert.NoError(t, err)
		assert.Equal(t, StringList{"Go", "SQL"}, s)
	})

	t.Run("Should split a newline-separated string", func(t *testing.T) {
		var s StringList
		err := json.Unmarshal([]byte(`"5+ years of Go\n  Strong SQL \n\n"`), &s)
		assert.NoError(t, err)
		assert.Equal(t, StringList{"5+ years of Go", "Strong SQL"}, s)
	})

	t.Run("Should yield an empty list for blank input", func(t *testing.T) {
		var s StringList
		err := json.Unmarshal([]byte(`"  \n "`), &s)
		assert.NoError(t, err)
		assert.Empty(t, s)
	})

	t.Run("Should reject non-string shapes", func(t *testing.T) {
		var s StringList
		err := json.Unmarshal([]byte(`{"not": "a list"}`), &s)
		assert.Error(t, err)
	})
}
