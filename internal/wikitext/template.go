package wikitext

import (
	"regexp"
	"strings"
)

// templatePattern matches non-nested template calls: {{name|arg|key=val}}.
var templatePattern = regexp.MustCompile(`{{(.*?)}}`)

// wikilinkPattern matches wikilinks: [[target]], [[target|display]],
// [[target#anchor]].
var wikilinkPattern = regexp.MustCompile(`\[\[([^\]]+?)\]\]`)

// Argument is one argument of a template call. Name is empty for
// positional arguments.
type Argument struct {
	Name  string
	Value string
}

// Template is a parsed template call.
type Template struct {
	Name string
	Args []Argument
}

// Arg returns the i-th positional argument (0-based).
func (t Template) Arg(i int) (string, bool) {
	n := 0
	for _, a := range t.Args {
		if a.Name != "" {
			continue
		}
		if n == i {
			return a.Value, true
		}
		n++
	}
	return "", false
}

// Named returns the value of a named argument.
func (t Template) Named(name string) (string, bool) {
	for _, a := range t.Args {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Templates scans text for template calls in document order.
func Templates(text string) []Template {
	var out []Template
	for _, m := range templatePattern.FindAllStringSubmatch(text, -1) {
		out = append(out, parseTemplate(m[1]))
	}
	return out
}

func parseTemplate(inner string) Template {
	parts := strings.Split(inner, "|")
	t := Template{Name: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		if name, value, ok := strings.Cut(p, "="); ok {
			t.Args = append(t.Args, Argument{
				Name:  strings.TrimSpace(name),
				Value: strings.TrimSpace(value),
			})
		} else {
			t.Args = append(t.Args, Argument{Value: strings.TrimSpace(p)})
		}
	}
	return t
}

// Pronunciation extracts the first argument of the first {{pron}} template
// call in text. Returns false when no pronunciation is present.
func Pronunciation(text string) (string, bool) {
	for _, t := range Templates(text) {
		if t.Name != "pron" {
			continue
		}
		if v, ok := t.Arg(0); ok && v != "" {
			return v, true
		}
		return "", false
	}
	return "", false
}

// LinkTargets collects the targets of every wikilink in text, in document
// order. Display text and anchors are stripped: [[cheval|chevaux]] and
// [[cheval#fr]] both yield "cheval".
func LinkTargets(text string) []string {
	var out []string
	for _, m := range wikilinkPattern.FindAllStringSubmatch(text, -1) {
		target := m[1]
		target, _, _ = strings.Cut(target, "|")
		target, _, _ = strings.Cut(target, "#")
		target = strings.TrimSpace(target)
		if target != "" {
			out = append(out, target)
		}
	}
	return out
}
