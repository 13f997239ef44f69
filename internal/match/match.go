// Package match implements ordered string matching rules over in-memory
// indices. A Matcher tries its rules in order and returns the first hit.
package match

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Rule resolves a query to a canonical value.
type Rule struct {
	Name  string
	Match func(query string) (string, bool)
}

// Result is the outcome of a successful match.
type Result struct {
	Value string
	Rule  string
}

type Matcher struct {
	rules []Rule
}

func New(rules ...Rule) *Matcher {
	return &Matcher{rules: rules}
}

func (m *Matcher) Match(query string) (Result, bool) {
	if strings.TrimSpace(query) == "" {
		return Result{}, false
	}

	for _, r := range m.rules {
		if v, ok := r.Match(query); ok {
			return Result{Value: v, Rule: r.Name}, true
		}
	}

	return Result{}, false
}

// Exact matches keys byte for byte.
func Exact(index map[string]string) Rule {
	idx := make(map[string]string, len(index))
	for k, v := range index {
		idx[k] = v
	}

	return Rule{Name: "exact", Match: func(q string) (string, bool) {
		v, ok := idx[q]
		return v, ok
	}}
}

// Fold matches keys ignoring case and surrounding whitespace.
func Fold(index map[string]string) Rule {
	return keyed("fold", index, FoldKey)
}

// Synonym matches a folded alias table (romanizations, translations,
// alternative spellings) onto canonical values.
func Synonym(table map[string]string) Rule {
	return keyed("synonym", table, FoldKey)
}

// Normalized matches titles after stripping punctuation, symbols and spaces.
func Normalized(index map[string]string) Rule {
	return keyed("normalized", index, NormalizeTitle)
}

// Substring matches when a folded label contains the query or the query
// contains the label. Labels shorter than minLen are ignored; the longest
// matching label wins.
func Substring(labels map[string]string, minLen int) Rule {
	type entry struct{ label, value string }
	entries := make([]entry, 0, len(labels))
	for k, v := range labels {
		k = FoldKey(k)
		if len([]rune(k)) < minLen {
			continue
		}
		entries = append(entries, entry{label: k, value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].label) != len(entries[j].label) {
			return len(entries[i].label) > len(entries[j].label)
		}
		return entries[i].label < entries[j].label
	})

	return Rule{Name: "substring", Match: func(q string) (string, bool) {
		q = FoldKey(q)
		if len([]rune(q)) < minLen {
			return "", false
		}
		for _, e := range entries {
			if strings.Contains(e.label, q) || strings.Contains(q, e.label) {
				return e.value, true
			}
		}
		return "", false
	}}
}

func keyed(name string, index map[string]string, key func(string) string) Rule {
	idx := make(map[string]string, len(index))
	for k, v := range index {
		if kk := key(k); kk != "" {
			if _, dup := idx[kk]; !dup {
				idx[kk] = v
			}
		}
	}

	return Rule{Name: name, Match: func(q string) (string, bool) {
		kk := key(q)
		if kk == "" {
			return "", false
		}
		v, ok := idx[kk]
		return v, ok
	}}
}

// FoldKey lowercases and trims s after NFKC normalisation.
func FoldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// NormalizeTitle folds s and drops everything that is not a letter or digit.
func NormalizeTitle(s string) string {
	s = FoldKey(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
