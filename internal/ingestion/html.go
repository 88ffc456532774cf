package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resumeContentSelectors are tried in order before falling back to body.
// Exported resume templates commonly wrap the content in one of these.
var resumeContentSelectors = []string{
	"main",
	"article",
	".resume",
	"#resume",
	".content",
	"#content",
}

// ExtractHTMLText parses an HTML resume and returns its visible text with
// line structure preserved, so the downstream heuristics still see a header
// block and section headings.
func ExtractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, script, style, noscript").Remove()

	content := doc.Find("body")
	for _, selector := range resumeContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}

	// Block-level elements become lines; inline text stays together.
	var sb strings.Builder
	content.Find("h1, h2, h3, h4, h5, h6, p, li, div, br").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 && !s.Is("br") {
			return // only leaf blocks contribute text, parents would duplicate it
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	if sb.Len() == 0 {
		return strings.TrimSpace(content.Text()), nil
	}
	return strings.TrimSpace(sb.String()), nil
}
