// Package catalog resolves the label for every supported language.
//
// Languages come from a LINGUAS file, translations from gettext catalogs laid
// out as <localedir>/<lang>/LC_MESSAGES/<domain>.mo (or .po).
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

const (
	// DefaultDomain is the gettext domain fwupd ships its strings in.
	DefaultDomain = "fwupd"
	// SourceLanguage carries the untranslated label.
	SourceLanguage = "en"
)

// Excluded languages are never looked up or rendered.
// Ligatures are broken for hi, so it falls back to the source text at boot.
var Excluded = map[string]bool{
	"hi": true,
}

// ReadLinguas reads the LINGUAS file at path. See ParseLinguas.
func ReadLinguas(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLinguas(f)
}

// ParseLinguas returns the languages listed one per line in r, in order.
// Blank lines and # comments are ignored, excluded languages are dropped and
// SourceLanguage is always appended last.
func ParseLinguas(r io.Reader) ([]string, error) {
	var langs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx != -1 {
			line = line[:idx]
		}
		for _, lang := range strings.Fields(line) {
			if Excluded[lang] || lang == SourceLanguage || seen[lang] {
				continue
			}
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read linguas: %w", err)
	}

	return append(langs, SourceLanguage), nil
}

// Translator looks up a string for one language.
type Translator interface {
	Translate(language, text string) string
}

// Catalog is a Translator backed by gettext files.
type Catalog struct {
	dir    string
	domain string

	mu      sync.Mutex
	locales map[string]*gotext.Locale
}

// New returns a Catalog reading from localeDir.
func New(localeDir, domain string) *Catalog {
	for len(localeDir) > 1 && strings.HasSuffix(localeDir, "/") {
		localeDir = localeDir[:len(localeDir)-1]
	}
	if domain == "" {
		domain = DefaultDomain
	}
	return &Catalog{
		dir:     localeDir,
		domain:  domain,
		locales: make(map[string]*gotext.Locale),
	}
}

// Translate returns text translated into language, or text itself when the
// language has no catalog or no entry for it.
func (c *Catalog) Translate(language, text string) string {
	if language == SourceLanguage || Excluded[language] {
		return text
	}
	return c.locale(language).GetD(c.domain, text)
}

func (c *Catalog) locale(language string) *gotext.Locale {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.locales[language]; ok {
		return l
	}
	l := gotext.NewLocale(c.dir, language)
	l.AddDomain(c.domain)
	c.locales[language] = l
	return l
}

// Entry is the label resolved for one language.
type Entry struct {
	Language string
	Text     string
}

// Resolve translates label for each language, dropping languages whose
// translation is identical to the label. The source language always keeps
// the label verbatim.
func Resolve(t Translator, label string, languages []string) (entries []Entry, skipped []string) {
	for _, lang := range languages {
		if Excluded[lang] {
			continue
		}
		if lang == SourceLanguage {
			entries = append(entries, Entry{Language: lang, Text: label})
			continue
		}
		text := t.Translate(lang, label)
		if text == label || text == "" {
			skipped = append(skipped, lang)
			continue
		}
		entries = append(entries, Entry{Language: lang, Text: text})
	}
	return entries, skipped
}
