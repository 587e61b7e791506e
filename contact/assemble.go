package contact

import (
	"strings"

	"go.uber.org/zap"
)

const (
	maxCompanyTypes = 3
	maxServices     = 10
)

// Extractor runs the per-field pattern cascades and assembles ContactInfo
// records. The pattern tables are compiled once at package load; an
// Extractor holds no mutable state and is safe to share across goroutines.
type Extractor struct {
	log *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger attaches a logger. Extraction logs at debug level only.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

// NewExtractor returns a ready-to-use extractor. Without options it is
// silent (nop logger).
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{log: zap.NewNop()}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// FieldCandidates carries every field's ranked candidate list, for callers
// that want the alternatives behind the assembler's first-match picks.
type FieldCandidates struct {
	Emails       []string
	Phones       []string
	Faxes        []string
	Addresses    []string
	Websites     []string
	Persons      []string
	Departments  []string
	PostalCodes  []string
	Countries    []string
	CompanyTypes []string
	Services     []string
	LinkedInURLs []string
}

// Candidates runs every field extractor over text and returns the full
// ranked lists.
func (e *Extractor) Candidates(text string) *FieldCandidates {
	return &FieldCandidates{
		Emails:       e.Emails(text),
		Phones:       e.Phones(text),
		Faxes:        e.Faxes(text),
		Addresses:    e.Addresses(text),
		Websites:     e.Websites(text),
		Persons:      e.Persons(text),
		Departments:  e.Departments(text),
		PostalCodes:  e.PostalCodes(text),
		Countries:    e.Countries(text),
		CompanyTypes: e.CompanyTypes(text),
		Services:     e.ServiceTags(text),
		LinkedInURLs: e.LinkedInURLs(text),
	}
}

// Extract assembles one record from a block of page text. Each field takes
// the first candidate of its extractor's output; companyName seeds the
// record when the caller already knows it (directory listings usually do).
// City is derived from the address and never asserted independently.
func (e *Extractor) Extract(text, companyName string) *ContactInfo {
	c := NewContactInfo()
	c.CompanyName = companyName

	fc := e.Candidates(text)

	c.Email = first(fc.Emails)
	c.Phone = first(fc.Phones)
	c.Fax = first(fc.Faxes)
	c.Address = first(fc.Addresses)
	c.Website = first(fc.Websites)
	c.ContactPerson = first(fc.Persons)
	c.Department = first(fc.Departments)
	c.PostalCode = first(fc.PostalCodes)
	c.Country = first(fc.Countries)
	c.LinkedIn = first(fc.LinkedInURLs)

	types := fc.CompanyTypes
	if len(types) > maxCompanyTypes {
		types = types[:maxCompanyTypes]
	}

	c.CompanyType = strings.Join(types, ", ")

	if len(fc.Services) > 0 {
		services := fc.Services
		if len(services) > maxServices {
			services = services[:maxServices]
		}

		c.Services = services
	}

	if c.Address != "" {
		if m := cityInAddress.FindStringSubmatch(c.Address); m != nil {
			c.City = m[1]
		}
	}

	e.log.Debug("assembled contact record",
		zap.String("company", c.CompanyName),
		zap.Int("emails", len(fc.Emails)),
		zap.Int("phones", len(fc.Phones)),
		zap.Int("addresses", len(fc.Addresses)),
	)

	return c
}

// Verdict is the validator's output for one record.
type Verdict struct {
	Valid  bool
	Issues []string
}

// Process runs the whole pipeline: extract, enrich from page context,
// validate. It always returns a record; the verdict tells the caller
// whether to keep it.
func (e *Extractor) Process(text, companyName, pageURL, pageTitle string) (*ContactInfo, Verdict) {
	c := e.Extract(text, companyName)
	e.Enrich(c, pageURL, pageTitle)

	valid, issues := e.Validate(c)

	return c, Verdict{Valid: valid, Issues: issues}
}

func first(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	return candidates[0]
}
