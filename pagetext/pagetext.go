// Package pagetext turns caller-supplied HTML into the text view the
// contact extractor consumes: visible body text plus high-trust hints from
// mailto: and tel: anchors. It does not fetch anything.
package pagetext

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mcnijman/go-emailaddress"
)

// Page is the text view of one company page.
type Page struct {
	Title  string
	Text   string
	Emails []string // from mailto: anchors, in document order
	Phones []string // from tel: anchors, in document order
}

// Parse extracts the page title, the visible text and the anchor hints from
// an HTML document.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	p := &Page{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	seenEmail := map[string]bool{}

	doc.Find("a[href^='mailto:']").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}

		value := strings.TrimPrefix(href, "mailto:")
		if idx := strings.Index(value, "?"); idx != -1 {
			value = value[:idx]
		}

		email, err := emailaddress.Parse(strings.TrimSpace(value))
		if err != nil {
			return
		}

		if !seenEmail[email.String()] {
			seenEmail[email.String()] = true
			p.Emails = append(p.Emails, email.String())
		}
	})

	seenPhone := map[string]bool{}

	doc.Find("a[href^='tel:']").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}

		phone := strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
		if phone == "" || seenPhone[phone] {
			return
		}

		seenPhone[phone] = true
		p.Phones = append(p.Phones, phone)
	})

	doc.Find("script,style,noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		p.Text = collapseBlankLines(doc.Text())
	} else {
		p.Text = collapseBlankLines(body.Text())
	}

	return p, nil
}

// ContactText prefixes the anchor hints as labelled lines, so the
// extractor's label-first pattern ordering ranks them above anything the
// body text merely looks like.
func (p *Page) ContactText() string {
	var b strings.Builder

	for _, email := range p.Emails {
		b.WriteString("Email: ")
		b.WriteString(email)
		b.WriteString("\n")
	}

	for _, phone := range p.Phones {
		b.WriteString("Phone: ")
		b.WriteString(phone)
		b.WriteString("\n")
	}

	b.WriteString(p.Text)

	return b.String()
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}
