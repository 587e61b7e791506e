package contact

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingText = "ABC Logistics Ltd.\n" +
	"Contact: John Smith, Sales Manager\n" +
	"Email: john.smith@abclogistics.com\n" +
	"Phone: +1-555-123-4567\n" +
	"Address: 123 Main Street, New York, NY 10001\n" +
	"Website: www.abclogistics.com\n" +
	"Services: Air Freight, Ocean Shipping, Warehousing"

func TestExtract_EndToEnd(t *testing.T) {
	e := NewExtractor()

	c, verdict := e.Process(listingText, "ABC Logistics Ltd.", "", "")

	assert.Equal(t, "ABC Logistics Ltd.", c.CompanyName)
	assert.Equal(t, "john.smith@abclogistics.com", c.Email)
	assert.Equal(t, "15551234567", strings.TrimPrefix(NormalizePhone(c.Phone), "+"))
	assert.Equal(t, "https://www.abclogistics.com", c.Website)
	assert.Contains(t, c.ContactPerson, "Smith")
	assert.Equal(t, "New York", c.City)
	assert.Equal(t, "10001", c.PostalCode)
	assert.Contains(t, c.Services, "Air Freight")
	assert.Contains(t, c.Services, "Ocean Shipping")
	assert.Contains(t, c.Services, "Warehousing")

	assert.True(t, verdict.Valid)
	assert.Empty(t, verdict.Issues)
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor()

	a := e.Extract(listingText, "ABC Logistics Ltd.")
	b := e.Extract(listingText, "ABC Logistics Ltd.")

	require.True(t, reflect.DeepEqual(a, b), "two runs over identical text must match")
}

func TestExtract_EmptyFieldsAreEmptyStrings(t *testing.T) {
	e := NewExtractor()

	c := e.Extract("nothing useful here", "")

	assert.Equal(t, "", c.Email)
	assert.Equal(t, "", c.Phone)
	assert.Equal(t, "", c.Address)
	assert.Equal(t, "", c.City)
	require.NotNil(t, c.Services)
	assert.Len(t, c.Services, 0)
}

func TestExtract_CompanyTypeCap(t *testing.T) {
	e := NewExtractor()

	c := e.Extract("Acme Ltd Inc Corp LLC Group", "Acme")

	parts := strings.Split(c.CompanyType, ", ")
	assert.Len(t, parts, 3)
	assert.Equal(t, "LTD", parts[0])
}

func TestExtract_ServicesCap(t *testing.T) {
	e := NewExtractor()

	text := "logistics shipping freight transport cargo warehousing " +
		"distribution trucking rail intermodal customs forwarding"

	c := e.Extract(text, "Acme")
	assert.Len(t, c.Services, 10)
}

func TestExtract_CityOnlyFromAddress(t *testing.T) {
	e := NewExtractor()

	// A city-looking shape without any address keeps city empty.
	c := e.Extract("we love, New York, a lot", "Acme")
	assert.Equal(t, "", c.Address)
	assert.Equal(t, "", c.City)
}

func TestCandidates_RankedLists(t *testing.T) {
	e := NewExtractor()

	fc := e.Candidates("Email: a@acme.com also b@acme.com and c@acme.com")

	require.Len(t, fc.Emails, 3)
	assert.Equal(t, "a@acme.com", fc.Emails[0])
}
