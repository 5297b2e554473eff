// Package wikitext pulls template calls and link targets out of raw
// MediaWiki page source. It is a scanner, not a full parser: it tracks
// {{ }} and [[ ]] nesting so pipes inside embedded templates and links
// don't split the surrounding parameter list, which is as much structure
// as quest pages actually use.
package wikitext

import (
	"regexp"
	"strings"
)

// Template is a single {{...}} invocation lifted out of page source.
type Template struct {
	Name   string
	params []param
}

type param struct {
	name  string
	value string
}

var linkPattern = regexp.MustCompile(`\[\[([^\]]+?)\]\]`)

// Templates returns every invocation of the named template in source,
// including ones nested inside other templates' parameters. Name
// comparison is case-insensitive because wikis are loose about it.
func Templates(source, name string) []Template {
	var out []Template
	for i := 0; i+1 < len(source); i++ {
		if source[i] != '{' || source[i+1] != '{' {
			continue
		}
		body, ok := matchBraces(source[i:])
		if !ok {
			continue
		}
		tpl := parseTemplate(body)
		if strings.EqualFold(tpl.Name, strings.TrimSpace(name)) {
			out = append(out, tpl)
		}
	}
	return out
}

// Param returns the value of a named parameter. Surrounding whitespace
// is preserved so multiline values like requirement lists come back
// intact.
func (t Template) Param(name string) (string, bool) {
	for _, p := range t.params {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

// Positional returns the i-th unnamed parameter, trimmed.
func (t Template) Positional(i int) (string, bool) {
	n := 0
	for _, p := range t.params {
		if p.name != "" {
			continue
		}
		if n == i {
			return strings.TrimSpace(p.value), true
		}
		n++
	}
	return "", false
}

// Links returns the target of every [[...]] link in source, in order.
// Display labels after a pipe are dropped.
func Links(source string) []string {
	var targets []string
	for _, match := range linkPattern.FindAllStringSubmatch(source, -1) {
		target, _, _ := strings.Cut(match[1], "|")
		targets = append(targets, strings.TrimSpace(target))
	}
	return targets
}

// StripBrackets removes every square bracket, which is how raw link
// markup gets flattened into display text.
func StripBrackets(s string) string {
	return strings.NewReplacer("[", "", "]", "").Replace(s)
}

// matchBraces takes a string starting with "{{" and returns the body of
// that template, i.e. everything between the opening braces and their
// balancing "}}".
func matchBraces(s string) (string, bool) {
	depth := 0
	i := 0
	for i+1 < len(s) {
		switch {
		case s[i] == '{' && s[i+1] == '{':
			depth++
			i += 2
		case s[i] == '}' && s[i+1] == '}':
			depth--
			i += 2
			if depth == 0 {
				return s[2 : i-2], true
			}
		default:
			i++
		}
	}
	return "", false
}

func parseTemplate(body string) Template {
	parts := splitParams(body)
	tpl := Template{Name: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		name, value, found := cutParam(part)
		if !found {
			tpl.params = append(tpl.params, param{value: part})
			continue
		}
		tpl.params = append(tpl.params, param{
			name:  strings.TrimSpace(name),
			value: value,
		})
	}
	return tpl
}

// splitParams splits a template body on pipes, ignoring pipes nested
// inside inner templates or links.
func splitParams(body string) []string {
	var parts []string
	var braces, brackets int
	last := 0
	for i := 0; i < len(body); i++ {
		two := i+1 < len(body)
		switch {
		case two && body[i] == '{' && body[i+1] == '{':
			braces++
			i++
		case two && body[i] == '}' && body[i+1] == '}':
			braces--
			i++
		case two && body[i] == '[' && body[i+1] == '[':
			brackets++
			i++
		case two && body[i] == ']' && body[i+1] == ']':
			brackets--
			i++
		case body[i] == '|' && braces == 0 && brackets == 0:
			parts = append(parts, body[last:i])
			last = i + 1
		}
	}
	return append(parts, body[last:])
}

// cutParam splits "name = value" on the first top-level equals sign.
// Parameters without one are positional.
func cutParam(part string) (string, string, bool) {
	var braces, brackets int
	for i := 0; i < len(part); i++ {
		two := i+1 < len(part)
		switch {
		case two && part[i] == '{' && part[i+1] == '{':
			braces++
			i++
		case two && part[i] == '}' && part[i+1] == '}':
			braces--
			i++
		case two && part[i] == '[' && part[i+1] == '[':
			brackets++
			i++
		case two && part[i] == ']' && part[i+1] == ']':
			brackets--
			i++
		case part[i] == '=' && braces == 0 && brackets == 0:
			return part[:i], part[i+1:], true
		}
	}
	return "", "", false
}
