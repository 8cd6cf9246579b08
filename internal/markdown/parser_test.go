package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseString(t *testing.T) {
	p := NewParser()

	out, err := p.ParseString("**Buy** milk\n- oat\n- whole")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Buy</strong>")
	assert.Contains(t, out, "<li>oat</li>")

	out, err = p.ParseString("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParser_DropsRawHTML(t *testing.T) {
	out, err := NewParser().ParseString(`<script>alert(1)</script> hello`)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestParser_HardWraps(t *testing.T) {
	out, err := NewParser().ParseString("line one\nline two")
	require.NoError(t, err)
	assert.Contains(t, out, "<br />")
}
