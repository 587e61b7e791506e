package contact

import (
	"net/url"
	"strings"
)

// Enrich fills currently-empty fields from page context. Populated fields
// are never overwritten.
//
// Website comes from the page URL's host; the company name comes from the
// page title with trailing "- Contact/About/Profile/Company" noise removed;
// the department is inferred from keywords in the email and phone values,
// tested in fixed priority order (sales, support, info).
func (e *Extractor) Enrich(c *ContactInfo, pageURL, pageTitle string) {
	if c.Website == "" && pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
			c.Website = "https://" + u.Host
		}
	}

	if c.CompanyName == "" && pageTitle != "" {
		name := strings.TrimSpace(titleTrailer.ReplaceAllString(pageTitle, ""))
		if len(name) >= 3 && len(name) <= 99 {
			c.CompanyName = name
		}
	}

	if c.Department == "" && (c.Email != "" || c.Phone != "") {
		blob := strings.ToLower(c.Email + c.Phone)

		switch {
		case strings.Contains(blob, "sales"):
			c.Department = "Sales"
		case strings.Contains(blob, "support"):
			c.Department = "Customer Support"
		case strings.Contains(blob, "info"):
			c.Department = "Information"
		}
	}
}
