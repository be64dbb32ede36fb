package theme

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	th := Default()
	assert.Equal(t, "#bb86fc", th.Palette.Primary.Main)
	assert.Equal(t, "#03dac6", th.Palette.Secondary.Main)
	assert.Equal(t, "#121212", th.Palette.Background)
	assert.Equal(t, 900, th.Breakpoints.MD)
}

func TestCSS(t *testing.T) {
	css, err := Default().CSS()
	require.NoError(t, err)
	out := string(css)

	assert.Contains(t, out, "--primary: #bb86fc;")
	assert.Contains(t, out, "--drawer-width: 260px;")
	assert.Contains(t, out, "h1 { font-weight: 700; }")
	assert.Contains(t, out, "h5 { font-weight: 500; }")
	assert.Contains(t, out, "@media (min-width: 900px)")
	assert.Contains(t, out, ".menu-state:checked ~ .drawer { transform: none; }")
	assert.Contains(t, out, ".menu-state:checked ~ .backdrop { display: block; }")
	for _, kf := range []string{"slide-in-left", "nudge-in-left", "rise-in", "fade-up", "pulse", "rotate-border"} {
		assert.Contains(t, out, "@keyframes "+kf+" ")
	}
	assert.NotContains(t, out, "<no value>")
}

func TestVariantDelay(t *testing.T) {
	assert.Equal(t, 120*time.Millisecond, NavItem.Delay(0))
	assert.Equal(t, 300*time.Millisecond, NavItem.Delay(3))
	assert.Equal(t, 120*time.Millisecond, NavItem.Delay(-1))
	assert.Equal(t, time.Duration(0), Page.Delay(5))
}

func TestVariantStyle(t *testing.T) {
	style := Card.Style(2)
	assert.True(t, strings.HasPrefix(style, "animation: rise-in 600ms "))
	assert.True(t, strings.HasSuffix(style, " 240ms both;"))
}
