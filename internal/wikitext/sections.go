// Package wikitext parses the raw markup of dump articles: the section tree,
// template calls, wikilinks, and display cleanup. Only the markup relevant to
// lexicographic structure is modeled.
package wikitext

import (
	"regexp"
	"strings"
)

// headingPattern recognizes section headings. Wiktionary headings wrap a
// template call in the heading markers, e.g. "== {{langue|fr}} ==". Plain
// "= text =" lines are ordinary content. A heading line with malformed or
// missing closing braces does not match and is treated as content.
var headingPattern = regexp.MustCompile(`^(=+) {{(.+)}}`)

// Section is one titled section of an article at a given depth. Title is the
// inner text of the heading template call, without braces (e.g. "S|nom" or
// "langue|fr"). Body holds every line between the heading and the next
// heading of equal or shallower depth, including deeper sub-headings.
type Section struct {
	Title string
	Body  string
}

// heading reports the depth (count of leading '=' markers) and title of a
// heading line. Depth 0 means the line is not a heading.
func heading(line string) (int, string) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, ""
	}
	return len(m[1]), strings.TrimSpace(m[2])
}

// Sections splits text into the ordered sequence of sections at exactly the
// target depth. A final section with no following heading runs to the end of
// the text. Text without any heading at the target depth yields nil.
func Sections(text string, depth int) []Section {
	var out []Section
	var title string
	var body []string
	recording := false

	flush := func() {
		if recording {
			out = append(out, Section{Title: title, Body: strings.Join(body, "\n")})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		d, t := heading(line)
		switch {
		case d == 0:
			if recording {
				body = append(body, line)
			}
		case d == depth:
			flush()
			title, body, recording = t, nil, true
		case d < depth:
			flush()
			recording = false
		default:
			// Deeper sub-heading: part of the current body.
			if recording {
				body = append(body, line)
			}
		}
	}
	flush()
	return out
}

// Head returns the leading part of a section body, above its first
// sub-heading of any depth. This is where definitions and inline
// grammatical markers live.
func Head(body string) string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if d, _ := heading(line); d > 0 {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
