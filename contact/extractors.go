package contact

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field extractors map raw text to an ordered, de-duplicated candidate list
// for one field. They share no state, never fail on malformed input, and an
// unmatched field is simply an empty list.

// Addresses returns street, PO-Box and "City, ST ZIP" candidates longer
// than ten characters.
func (e *Extractor) Addresses(text string) []string {
	seen := map[string]bool{}

	var addresses []string

	for _, hit := range runPatterns(addressPatterns, text) {
		address := strings.TrimSpace(hit)
		if len(address) <= 10 || seen[address] {
			continue
		}

		seen[address] = true
		addresses = append(addresses, address)
	}

	return addresses
}

// Websites returns URL candidates, lower-cased and forced to carry a scheme.
func (e *Extractor) Websites(text string) []string {
	seen := map[string]bool{}

	var websites []string

	for _, hit := range runPatterns(websitePatterns, text) {
		site := strings.ToLower(strings.TrimSpace(hit))
		if site == "" {
			continue
		}

		if !strings.HasPrefix(site, "http://") && !strings.HasPrefix(site, "https://") {
			switch {
			case strings.HasPrefix(site, "www."):
				site = "https://" + site
			case strings.Contains(site, ".") && !strings.HasPrefix(site, "mailto:"):
				site = "https://" + site
			}
		}

		if !isValidURL(site) || seen[site] {
			continue
		}

		seen[site] = true
		websites = append(websites, site)
	}

	return websites
}

// LinkedInURLs returns linkedin.com profile and company page URLs,
// normalized to https with query and fragment removed.
func (e *Extractor) LinkedInURLs(text string) []string {
	seen := map[string]bool{}

	var urls []string

	for _, hit := range runPatterns(linkedinPatterns, text) {
		u := normalizeSocialURL(hit)
		if u == "" || seen[u] {
			continue
		}

		seen[u] = true
		urls = append(urls, u)
	}

	return urls
}

// Persons returns contact-person candidates from label and honorific
// patterns: honorific stripped, 3 to 49 characters, title-cased, and never
// a bare label like "contact".
func (e *Extractor) Persons(text string) []string {
	seen := map[string]bool{}

	var persons []string

	for _, hit := range runPatterns(personPatterns, text) {
		person := strings.TrimSpace(hit)
		if len(person) < 3 || len(person) > 49 {
			continue
		}

		person = strings.TrimSpace(honorificPrefix.ReplaceAllString(person, ""))
		if person == "" {
			continue
		}

		switch strings.ToLower(person) {
		case "contact", "manager", "director":
			continue
		}

		person = titleCase(person)
		if seen[person] {
			continue
		}

		seen[person] = true
		persons = append(persons, person)
	}

	return persons
}

// Departments returns functional-department candidates, title-cased.
func (e *Extractor) Departments(text string) []string {
	seen := map[string]bool{}

	var departments []string

	for _, hit := range runPatterns(departmentPatterns, text) {
		dept := strings.TrimSpace(hit)
		if len(dept) < 3 || len(dept) > 49 {
			continue
		}

		dept = titleCase(dept)
		if seen[dept] {
			continue
		}

		seen[dept] = true
		departments = append(departments, dept)
	}

	return departments
}

// PostalCodes returns every distinct postal hit, ordered by pattern
// priority (US ZIP, Canadian, generic numeric).
func (e *Extractor) PostalCodes(text string) []string {
	seen := map[string]bool{}

	var codes []string

	for _, hit := range runPatterns(postalPatterns, text) {
		code := strings.TrimSpace(hit)
		if code == "" || seen[code] {
			continue
		}

		seen[code] = true
		codes = append(codes, code)
	}

	return codes
}

// Countries returns title-cased hits from the country vocabulary. The
// literal match is kept verbatim apart from casing ("usa" stays "Usa").
func (e *Extractor) Countries(text string) []string {
	seen := map[string]bool{}

	var countries []string

	for _, hit := range runPatterns(countryPatterns, text) {
		country := titleCase(strings.TrimSpace(hit))
		if country == "" || seen[country] {
			continue
		}

		seen[country] = true
		countries = append(countries, country)
	}

	return countries
}

// CompanyTypes returns upper-cased legal/industry suffix hits.
func (e *Extractor) CompanyTypes(text string) []string {
	seen := map[string]bool{}

	var types []string

	for _, hit := range runPatterns(companyTypePatterns, text) {
		t := strings.ToUpper(strings.TrimSpace(hit))
		if t == "" || seen[t] {
			continue
		}

		seen[t] = true
		types = append(types, t)
	}

	return types
}

// ServiceTags returns title-cased hits from the logistics-service
// vocabulary. The assembler caps the list, not the extractor.
func (e *Extractor) ServiceTags(text string) []string {
	seen := map[string]bool{}

	var services []string

	for _, hit := range runPatterns(servicePatterns, text) {
		service := titleCase(strings.TrimSpace(hit))
		if service == "" || seen[service] {
			continue
		}

		seen[service] = true
		services = append(services, service)
	}

	return services
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != "" && strings.Contains(u.Host, ".")
}

func normalizeSocialURL(raw string) string {
	u := strings.TrimSpace(raw)

	if idx := strings.IndexAny(u, "?#"); idx != -1 {
		u = u[:idx]
	}

	if strings.HasPrefix(u, "http://") {
		u = "https://" + strings.TrimPrefix(u, "http://")
	}

	return strings.TrimSuffix(u, "/")
}

// titleCase builds a fresh caser per call: cases.Caser carries internal
// state and must not be shared between goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
