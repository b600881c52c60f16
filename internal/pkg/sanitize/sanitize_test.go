package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	out := HTML(`<p>hello <b>lab</b></p><script>alert(1)</script>`)
	assert.Equal(t, `<p>hello <b>lab</b></p>`, out)

	link := HTML(`<a href="https://lab.edu" onclick="steal()">x</a>`)
	assert.Contains(t, link, `href="https://lab.edu"`)
	assert.NotContains(t, link, "onclick")
}

func TestHTMLPtr(t *testing.T) {
	assert.Nil(t, HTMLPtr(nil))

	in := `<img src="a.png" onerror="x()">`
	out := HTMLPtr(&in)
	assert.NotContains(t, *out, "onerror")
	assert.Equal(t, `<img src="a.png" onerror="x()">`, in)
}
