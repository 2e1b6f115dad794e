package readability_test

import (
	"testing"

	"github.com/fwojciec/wprefactor"
	"github.com/fwojciec/wprefactor/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordpressPage = `<!DOCTYPE html>
<html>
<head><title>Managed Print Services – KONICA MINOLTA</title></head>
<body class="page-template-default page page-id-42">
<header><nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav></header>
<article>
<h1>Managed Print Services</h1>
<p>Our managed print services reduce cost and waste across the whole fleet of office devices.</p>
<p>Devices are monitored remotely, so supplies arrive before they run out and service visits are planned.</p>
<p>Reports show usage per department, helping teams set realistic printing policies for everyone.</p>
</article>
<footer><p>Footer Copyright Notice</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(wordpressPage)

	require.NoError(t, err)
	assert.Equal(t, "Managed Print Services", result.Title)
	assert.Equal(t, "page-template-default page page-id-42", result.BodyClass)
	assert.Contains(t, result.ContentHTML, "supplies arrive before they run out")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "Footer Copyright Notice")
}

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("   ")

	require.Error(t, err)
	assert.Equal(t, wprefactor.EINVALID, wprefactor.ErrorCode(err))
}
