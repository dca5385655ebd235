package roster

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/talent-search/internal/candidate"
)

// resumeTextKeys are the fields the projection reads resume text from; when
// one is already populated the HTML is left alone.
var resumeTextKeys = []string{"resume_text", "resume"}

const resumeHTMLKey = "resume_html"

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// ExtractResumeText parses resume HTML and returns the plain text. Noise
// elements are stripped first; if no content container matches, the whole
// body is used.
func ExtractResumeText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse resume HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	var content *goquery.Selection
	for _, selector := range []string{"main", "article", ".resume", "#resume"} {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return CleanText(content.Text()), nil
}

// CleanText normalizes extracted resume text: line endings unified, lines
// trimmed, intra-line whitespace runs collapsed, blank lines dropped.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRuns.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}

// attachResumeText derives resume_text for records that carry only HTML.
// Extraction failures leave the record as it was; a bad resume never blocks
// a roster load.
func attachResumeText(rec candidate.Record) {
	if hasResumeText(rec) {
		return
	}

	html, ok := rec[resumeHTMLKey].(string)
	if !ok || strings.TrimSpace(html) == "" {
		return
	}

	text, err := ExtractResumeText(html)
	if err != nil || text == "" {
		return
	}
	rec["resume_text"] = text
}

func hasResumeText(rec candidate.Record) bool {
	for _, key := range resumeTextKeys {
		if s, ok := rec[key].(string); ok && strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
