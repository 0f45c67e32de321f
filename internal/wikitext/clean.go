package wikitext

import (
	"regexp"
	"strings"
)

var (
	bracesRe     = regexp.MustCompile(`{{.*?}}`)
	bracketsRe   = regexp.MustCompile(`\[\[(?:.*?\|)?(.*?)\]\]`)
	defMarkerRe  = regexp.MustCompile(`^ *#+ *\*?`)
	boldRe       = regexp.MustCompile(`'''`)
	italicRe     = regexp.MustCompile(`''`)
	multiSpaceRe = regexp.MustCompile(`  +`)
)

// Clean strips wikitext markup from a sentence for display: template calls
// are removed, wikilinks are replaced by their display text, definition
// markers and bold quotes are dropped, italic quotes become plain quotes,
// and runs of spaces collapse.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = bracesRe.ReplaceAllString(text, "")
	text = bracketsRe.ReplaceAllString(text, "$1")
	text = defMarkerRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "")
	text = italicRe.ReplaceAllString(text, `"`)
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CollapseSpaces compresses runs of spaces left behind by template removal
// and trims the result.
func CollapseSpaces(text string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}
