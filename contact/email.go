package contact

import (
	"strings"

	"github.com/mcnijman/go-emailaddress"
)

// Mailboxes that are never a usable business contact. Matched as substrings
// anywhere in the address.
var skipMailboxes = []string{
	"noreply",
	"no-reply",
	"donotreply",
	"admin@admin",
	"webmaster",
	"postmaster",
	"info@info",
	"test@test",
}

// Emails returns email candidates: labelled hits first, then plain grammar
// hits, then de-obfuscated (at)/[at]/" at " variants. Every candidate is
// lower-cased, parsed as a real address, and filtered against the
// non-personal mailbox list.
func (e *Extractor) Emails(text string) []string {
	seen := map[string]bool{}

	var emails []string

	add := func(raw string) {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" || seen[email] {
			return
		}

		if !isValidEmail(email) {
			return
		}

		if _, err := emailaddress.Parse(email); err != nil {
			return
		}

		for _, skip := range skipMailboxes {
			if strings.Contains(email, skip) {
				return
			}
		}

		seen[email] = true
		emails = append(emails, email)
	}

	for _, hit := range runPatterns(emailPatterns, text) {
		add(hit)
	}

	for _, hit := range runPatterns(obfuscatedEmailPatterns, text) {
		add(deobfuscateAt(hit))
	}

	return emails
}

func isValidEmail(email string) bool {
	if len(email) < 5 {
		return false
	}

	return emailGrammar.MatchString(email)
}

func deobfuscateAt(email string) string {
	email = atParens.ReplaceAllString(email, "@")
	email = atSquare.ReplaceAllString(email, "@")
	email = atSpaced.ReplaceAllString(email, "@")

	return email
}
