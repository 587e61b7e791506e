package contact

import "fmt"

// Validate inspects an assembled record and returns a verdict plus
// human-readable issues. Missing company identity, a malformed email, or the
// total absence of any contact channel flip the verdict; phone and website
// problems are advisory only, since those fields are supplementary.
func (e *Extractor) Validate(c *ContactInfo) (bool, []string) {
	var issues []string

	valid := true

	if len(c.CompanyName) < 2 {
		issues = append(issues, "Company name is missing or too short")
		valid = false
	}

	if c.Email != "" && !isValidEmail(c.Email) {
		issues = append(issues, fmt.Sprintf("Invalid email format: %s", c.Email))
		valid = false
	}

	if c.Phone != "" && PhoneValidity(c.Phone) == PhoneInvalid {
		issues = append(issues, fmt.Sprintf("Invalid phone format: %s", c.Phone))
	}

	if c.Website != "" && !isValidURL(c.Website) {
		issues = append(issues, fmt.Sprintf("Invalid website URL: %s", c.Website))
	}

	if !c.HasContactChannel() {
		issues = append(issues, "No contact information found")
		valid = false
	}

	return valid, issues
}
