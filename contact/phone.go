package contact

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// PhoneCheck tells how a phone number passed (or failed) validation, so
// callers can distinguish a grammar-verified number from a best-effort one.
type PhoneCheck int

const (
	// PhoneInvalid failed both the grammar check and the digit-count heuristic.
	PhoneInvalid PhoneCheck = iota
	// PhoneGrammarValid was parsed and accepted by the phone-number grammar.
	PhoneGrammarValid
	// PhoneHeuristicValid could not be vouched for by the grammar but has a
	// plausible 10-15 digit count.
	PhoneHeuristicValid
)

// Phones returns phone candidates in pattern priority order. The stored
// value keeps the original formatting for readability; candidates whose
// digit count is below ten, or that fail both validity checks, are dropped.
func (e *Extractor) Phones(text string) []string {
	return e.numberCandidates(phonePatterns, text)
}

// Faxes returns fax candidates from label-prefixed "fax:" lines, gated by
// the same normalization and validity rules as phones.
func (e *Extractor) Faxes(text string) []string {
	return e.numberCandidates(faxPatterns, text)
}

func (e *Extractor) numberCandidates(patterns []capturePattern, text string) []string {
	seen := map[string]bool{}

	var numbers []string

	for _, hit := range runPatterns(patterns, text) {
		number := strings.TrimSpace(hit)
		if number == "" || seen[number] {
			continue
		}

		if digitCount(number) < 10 {
			continue
		}

		if PhoneValidity(number) == PhoneInvalid {
			continue
		}

		seen[number] = true
		numbers = append(numbers, number)
	}

	return numbers
}

// PhoneValidity checks a number against the phone-number grammar and falls
// back to a 10-15 digit-count heuristic when the grammar cannot vouch for
// it. It never panics; a parser fault just means the fallback is used.
func PhoneValidity(phone string) PhoneCheck {
	if grammarValid(phone) {
		return PhoneGrammarValid
	}

	if d := digitCount(phone); d >= 10 && d <= 15 {
		return PhoneHeuristicValid
	}

	return PhoneInvalid
}

func grammarValid(phone string) (valid bool) {
	// The parser is third-party code fed with arbitrary scraped text;
	// treat any panic as "could not validate".
	defer func() {
		if r := recover(); r != nil {
			valid = false
		}
	}()

	num, err := phonenumbers.Parse(phone, "")
	if err != nil {
		return false
	}

	return phonenumbers.IsValidNumber(num)
}

// NormalizePhone strips everything but digits and a leading plus, yielding
// a dialable form of a stored (human-formatted) candidate.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder

	for i, r := range s {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func digitCount(s string) int {
	n := 0

	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}

	return n
}
