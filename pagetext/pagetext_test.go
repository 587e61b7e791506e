package pagetext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdex/directory-scraper/contact"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
  <title>ABC Logistics Ltd. - Contact</title>
  <script>var tracker = "noise@tracker.invalid";</script>
</head>
<body>
  <h1>ABC Logistics Ltd.</h1>
  <p>General enquiries: office@abclogistics.com</p>
  <a href="mailto:sales@abclogistics.com?subject=Quote">Email sales</a>
  <a href="tel:+1-555-123-4567">Call us</a>
  <style>.x { color: red }</style>
</body>
</html>`

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleHTML))
	require.NoError(t, err)

	assert.Equal(t, "ABC Logistics Ltd. - Contact", p.Title)
	assert.Equal(t, []string{"sales@abclogistics.com"}, p.Emails)
	assert.Equal(t, []string{"+1-555-123-4567"}, p.Phones)

	assert.Contains(t, p.Text, "office@abclogistics.com")
	assert.NotContains(t, p.Text, "tracker")
	assert.NotContains(t, p.Text, "color: red")
}

func TestContactText_AnchorsOutrankBodyText(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleHTML))
	require.NoError(t, err)

	e := contact.NewExtractor()
	c, verdict := e.Process(p.ContactText(), "", "https://www.abclogistics.com/contact", p.Title)

	// The mailto: anchor wins over the email that appears first in the body.
	assert.Equal(t, "sales@abclogistics.com", c.Email)
	assert.Equal(t, "+1-555-123-4567", c.Phone)

	// Page title fills the missing company name.
	assert.Equal(t, "ABC Logistics Ltd.", c.CompanyName)
	assert.True(t, verdict.Valid)
}

func TestParse_MalformedHTML(t *testing.T) {
	p, err := Parse(strings.NewReader("<p>broken <a href='mailto:'>x</a>"))
	require.NoError(t, err)

	assert.Empty(t, p.Emails)
	assert.Empty(t, p.Phones)
}
