package contact

import "strings"

// ContactInfo is the structured contact record assembled from one block of
// page text. Absence is always the empty string (never a null), and Services
// is never nil. A record is mutated in place during assembly and enrichment;
// once it has been validated it is treated as read-only by every consumer.
type ContactInfo struct {
	CompanyName   string   `json:"company_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	Website       string   `json:"website"`
	ContactPerson string   `json:"contact_person"`
	Department    string   `json:"department"`
	Country       string   `json:"country"`
	City          string   `json:"city"`
	PostalCode    string   `json:"postal_code"`
	Fax           string   `json:"fax"`
	LinkedIn      string   `json:"linkedin"`
	CompanyType   string   `json:"company_type"`
	Services      []string `json:"services"`
}

// NewContactInfo returns an empty record with a non-nil Services slice.
func NewContactInfo() *ContactInfo {
	return &ContactInfo{Services: []string{}}
}

// HasContactChannel reports whether at least one way of reaching the company
// (email, phone, address or website) is populated.
func (c *ContactInfo) HasContactChannel() bool {
	return c.Email != "" || c.Phone != "" || c.Address != "" || c.Website != ""
}

// CsvHeaders returns the column names for CsvRow, in the same order.
func (c *ContactInfo) CsvHeaders() []string {
	return []string{
		"company_name",
		"email",
		"phone",
		"address",
		"website",
		"contact_person",
		"department",
		"country",
		"city",
		"postal_code",
		"fax",
		"linkedin",
		"company_type",
		"services",
	}
}

// CsvRow flattens the record into one spreadsheet row. Services are joined
// with ", " so the row stays one cell per field.
func (c *ContactInfo) CsvRow() []string {
	return []string{
		c.CompanyName,
		c.Email,
		c.Phone,
		c.Address,
		c.Website,
		c.ContactPerson,
		c.Department,
		c.Country,
		c.City,
		c.PostalCode,
		c.Fax,
		c.LinkedIn,
		c.CompanyType,
		strings.Join(c.Services, ", "),
	}
}
