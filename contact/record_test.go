package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCsvRowMatchesHeaders(t *testing.T) {
	c := NewContactInfo()
	c.CompanyName = "Acme Ltd"
	c.Services = []string{"Logistics", "Customs"}

	headers := c.CsvHeaders()
	row := c.CsvRow()

	assert.Len(t, row, len(headers))
	assert.Equal(t, "Logistics, Customs", row[len(row)-1])
}

func TestHasContactChannel(t *testing.T) {
	assert.False(t, (&ContactInfo{CompanyName: "Acme"}).HasContactChannel())
	assert.True(t, (&ContactInfo{Address: "123 Main Street, Springfield"}).HasContactChannel())
}
