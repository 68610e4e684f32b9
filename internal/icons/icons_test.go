package icons

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Zap.SVG(16, "text-primary-600").Render(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "), out)
	assert.Contains(t, out, `width="16"`)
	assert.Contains(t, out, `height="16"`)
	assert.Contains(t, out, `class="text-primary-600"`)
	assert.Contains(t, out, `data-icon="zap"`)
	assert.Contains(t, out, "<polygon")
}

func TestSVG_NoClass(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Cog.SVG(12, "").Render(&buf))
	assert.NotContains(t, buf.String(), "class=")
}

func TestZeroIconRendersNothing(t *testing.T) {
	assert.True(t, Icon{}.IsZero())
	assert.Nil(t, Icon{}.SVG(12, "x"))
	assert.Equal(t, "", SafeGlyph(Icon{}))
}

func TestByName(t *testing.T) {
	i, ok := ByName("wrench")
	require.True(t, ok)
	assert.Equal(t, Wrench, i)

	_, ok = ByName("hammer")
	assert.False(t, ok)
}

func TestSafeGlyph(t *testing.T) {
	for _, i := range catalogue {
		t.Run(i.Name, func(t *testing.T) {
			got := SafeGlyph(i)
			trailing := len(got) - len(strings.TrimRight(got, " "))
			if runewidth.StringWidth(i.Glyph) >= 2 {
				assert.Equal(t, 2, trailing)
			} else {
				assert.Equal(t, 1, trailing)
			}
		})
	}
}

func TestGlyphText(t *testing.T) {
	assert.Equal(t, "→ go", GlyphText(ArrowRight, "go"))
}
