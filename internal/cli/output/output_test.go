package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_EffectiveMode(t *testing.T) {
	buf := new(bytes.Buffer)

	assert.Equal(t, ModeText, NewRenderer(buf, buf, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeText, NewRenderer(buf, buf, "").EffectiveMode())
	assert.Equal(t, ModeJSON, NewRenderer(buf, buf, ModeJSON).EffectiveMode())
}

func TestRenderer_PlainOutputWhenPiped(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRenderer(buf, buf, ModeAuto)

	// A bytes.Buffer is not a terminal, so styles must be passthrough.
	r.Println(r.Styles().Error.Render("boom"))
	assert.Equal(t, "boom\n", buf.String())
}

func TestRenderer_Success(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRenderer(buf, buf, ModeText)

	r.Success("all good")
	assert.Equal(t, "[OK] all good\n", buf.String())
}

func TestRenderer_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRenderer(buf, buf, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"issues": 2}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded["issues"])
}
