package contact

import "regexp"

// capturePattern is one entry of a field's pattern cascade. Patterns are
// tried in slice order: labelled, more specific shapes sit above generic
// shapes, and the assembler's first-match policy relies on that ordering.
// group selects the submatch used as the candidate (0 is the whole match).
type capturePattern struct {
	re    *regexp.Regexp
	group int
}

// runPatterns applies a cascade to text and returns every raw hit in
// priority order: table order first, then position in the text.
func runPatterns(patterns []capturePattern, text string) []string {
	var hits []string

	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			if p.group < len(m) && m[p.group] != "" {
				hits = append(hits, m[p.group])
			}
		}
	}

	return hits
}

var emailPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)email[\s:]*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`), 1},
	{regexp.MustCompile(`(?i)e-mail[\s:]*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`), 1},
	{regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 0},
}

// Obfuscated addresses: info(at)domain.com, info[at]domain.com, info at domain.com.
// They rank below plain hits and are normalized to @ before validation.
var obfuscatedEmailPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+\(at\)[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 0},
	{regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+\[at\][A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 0},
	{regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+\s+at\s+[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 0},
}

var (
	atParens = regexp.MustCompile(`\(at\)`)
	atSquare = regexp.MustCompile(`\[at\]`)
	atSpaced = regexp.MustCompile(`\s+at\s+`)
)

var phonePatterns = []capturePattern{
	{regexp.MustCompile(`\+\d{1,4}[\s-]?\d{1,4}[\s-]?\d{1,4}[\s-]?\d{1,9}`), 0},
	{regexp.MustCompile(`\(\d{3}\)[\s-]?\d{3}[\s-]?\d{4}`), 0},
	{regexp.MustCompile(`\d{3}[\s-]?\d{3}[\s-]?\d{4}`), 0},
	{regexp.MustCompile(`\+\d{1,3}[\s(-]?\d{1,4}[\s)-]?\d{1,4}[\s-]?\d{1,4}[\s-]?\d{1,9}`), 0},
	{regexp.MustCompile(`(?i)phone[\s:]*(\+?\d[\d\s()-]{8,})`), 1},
	{regexp.MustCompile(`(?i)tel[\s:]*(\+?\d[\d\s()-]{8,})`), 1},
	{regexp.MustCompile(`(?i)mobile[\s:]*(\+?\d[\d\s()-]{8,})`), 1},
}

var faxPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)fax[\s:]*(\+?\d[\d\s()-]{8,})`), 1},
}

var addressPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)\d+[\w .,'-]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Place|Pl|Court|Ct)\b[^.\n\r]*`), 0},
	{regexp.MustCompile(`(?i)address[\s:]*([^\n\r]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln)[^\n\r]*)`), 1},
	{regexp.MustCompile(`\d+[^,\n]+,\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2}\s+\d{5}`), 0},
	{regexp.MustCompile(`(?i)P\.?O\.?\s*Box\s+\d+[^,\n]*`), 0},
}

var websitePatterns = []capturePattern{
	{regexp.MustCompile(`(?i)https?://[\w.-]+(?::\d+)?(?:/[\w/_.]*(?:\?[\w&=%.]*)?(?:#[\w.]*)?)?`), 0},
	{regexp.MustCompile(`(?i)www\.[\w.-]+\.[A-Za-z]{2,}`), 0},
	{regexp.MustCompile(`(?i)website[\s:]*([^\s\n\r]+)`), 1},
	{regexp.MustCompile(`(?i)web[\s:]*([^\s\n\r]+)`), 1},
}

var linkedinPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/(?:in|company)/[A-Za-z0-9._-]+`), 0},
}

var personPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)contact[\s:]*((?:[A-Z][a-z]+\s*){1,3})`), 1},
	{regexp.MustCompile(`(?i)manager[\s:]*((?:[A-Z][a-z]+\s*){1,3})`), 1},
	{regexp.MustCompile(`(?i)director[\s:]*((?:[A-Z][a-z]+\s*){1,3})`), 1},
	{regexp.MustCompile(`(?i)president[\s:]*((?:[A-Z][a-z]+\s*){1,3})`), 1},
	{regexp.MustCompile(`(?i)ceo[\s:]*((?:[A-Z][a-z]+\s*){1,3})`), 1},
	{regexp.MustCompile(`Mr\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`), 1},
	{regexp.MustCompile(`Ms\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`), 1},
	{regexp.MustCompile(`Mrs\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`), 1},
}

// Longest alternatives first so "mrs." is not half-eaten by "mr.".
var honorificPrefix = regexp.MustCompile(`(?i)^(mrs\.?|mr\.?|ms\.?|dr\.?|prof\.?)\s*`)

var departmentPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)\b(sales|marketing|operations|logistics|shipping|freight|customer\s*service|support|admin|finance|hr|human\s*resources)\b`), 1},
	{regexp.MustCompile(`(?i)department[\s:]*([^\n\r,]+)`), 1},
	{regexp.MustCompile(`(?i)division[\s:]*([^\n\r,]+)`), 1},
}

// Postal cascades: US ZIP wins over Canadian, which wins over the bare
// numeric fallback. All distinct hits are kept in that priority order.
var postalPatterns = []capturePattern{
	{regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`), 0},
	{regexp.MustCompile(`\b[A-Z]\d[A-Z]\s*\d[A-Z]\d\b`), 0},
	{regexp.MustCompile(`\b\d{4,6}\b`), 0},
}

var countryPatterns = []capturePattern{
	{regexp.MustCompile(`(?i)\b(united states|usa|us|canada|china|japan|germany|france|uk|united kingdom|australia|singapore|hong kong|taiwan|south korea|india|brazil|mexico)\b`), 1},
}

var companyTypePatterns = []capturePattern{
	{regexp.MustCompile(`(?i)\b(ltd|limited|inc|incorporated|corp|corporation|llc|co\.|company|group|international|logistics|shipping|freight|transport|express|cargo|supply chain)\b`), 1},
}

var servicePatterns = []capturePattern{
	{regexp.MustCompile(`(?i)\b(air freight|sea freight|ocean freight|ocean shipping|supply chain|logistics|shipping|freight|transport|cargo|warehousing|distribution|trucking|rail|intermodal|customs|forwarding|3pl|4pl)\b`), 1},
}

// cityInAddress finds the first ", CityName," shape inside an address.
var cityInAddress = regexp.MustCompile(`,\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),`)

// titleTrailer strips "- Contact", "| About Us" style suffixes from page titles.
var titleTrailer = regexp.MustCompile(`(?i)\s*[-|]\s*(contact|about|profile|company).*$`)

// emailGrammar is the canonical address grammar used by the validator.
var emailGrammar = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
