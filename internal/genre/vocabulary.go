// Package genre maps free-form genre strings onto a fixed controlled
// vocabulary. Anything the vocabulary does not recognise is dropped.
package genre

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"manga_ingest/internal/match"
)

//go:embed genres.yaml
var defaultVocabulary []byte

// Entry is one genre of the vocabulary.
type Entry struct {
	Name     string   `yaml:"name"`
	English  string   `yaml:"english"`
	Synonyms []string `yaml:"synonyms"`
}

type file struct {
	Genres []Entry `yaml:"genres"`
}

type Vocabulary struct {
	entries []Entry
	matcher *match.Matcher
}

// Default returns the vocabulary embedded in the binary.
func Default() (*Vocabulary, error) {
	return Parse(defaultVocabulary)
}

// Load reads a vocabulary file. An empty path yields the default vocabulary.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Vocabulary, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	if len(f.Genres) == 0 {
		return nil, fmt.Errorf("parse vocabulary: no genres defined")
	}

	return New(f.Genres), nil
}

// New builds the matcher indices once; the vocabulary is immutable afterwards.
func New(entries []Entry) *Vocabulary {
	names := make(map[string]string, len(entries))
	synonyms := make(map[string]string)
	english := make(map[string]string, len(entries))

	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		names[name] = name
		if e.English != "" {
			english[e.English] = name
			synonyms[e.English] = name
		}
		for _, s := range e.Synonyms {
			synonyms[s] = name
		}
	}

	return &Vocabulary{
		entries: entries,
		matcher: match.New(
			match.Exact(names),
			match.Fold(names),
			match.Synonym(synonyms),
			match.Substring(english, 4),
		),
	}
}

func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Lookup resolves a single raw genre to its vocabulary name.
func (v *Vocabulary) Lookup(raw string) (string, bool) {
	res, ok := v.matcher.Match(raw)
	if !ok {
		return "", false
	}
	return res.Value, true
}

// Filter maps raw genre strings onto vocabulary names. Compound values such as
// "Action, Comedy" are split first. The result keeps first-seen order and has
// no duplicates; unrecognised genres are returned separately.
func (v *Vocabulary) Filter(raw []string) (valid, dropped []string) {
	seen := make(map[string]bool)

	for _, r := range raw {
		for _, part := range Split(r) {
			name, ok := v.Lookup(part)
			if !ok {
				dropped = append(dropped, part)
				continue
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			valid = append(valid, name)
		}
	}

	return valid, dropped
}

// Split breaks a compound genre string on common list separators.
func Split(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', '/', '|', ';', '、', '，', '；':
			return true
		}
		return false
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}
