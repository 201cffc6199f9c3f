// Package i18n serves the static text of the web pages in five languages.
package i18n

import (
	"embed"
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const DefaultLanguage = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

// display order of the language selector; the first entry is the fallback
var codes = []string{"en", "es", "fr", "de", "pt"}

type Language struct {
	Code      string
	Name      string
	ShortName string
	Flag      string
}

// Bundle is read-only after Load and safe for concurrent use.
type Bundle struct {
	langs   []Language
	texts   map[string]map[string]string
	matcher language.Matcher
}

// Load parses the embedded language packs.
func Load() (*Bundle, error) {
	b := &Bundle{texts: make(map[string]map[string]string, len(codes))}
	tags := make([]language.Tag, 0, len(codes))

	for _, code := range codes {
		raw, err := localeFS.ReadFile("locales/" + code + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", code, err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", code, err)
		}

		flat := make(map[string]string)
		flatten("", doc, flat)
		b.texts[code] = flat
		b.langs = append(b.langs, Language{
			Code:      code,
			Name:      flat["meta.name"],
			ShortName: flat["meta.shortName"],
			Flag:      flat["meta.flag"],
		})
		tags = append(tags, language.MustParse(code))
	}

	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// MustLoad is Load for program start-up.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Text returns the string for key in lang, falling back to English and then to the key itself.
func (b *Bundle) Text(lang, key string) string {
	if s, ok := b.texts[lang][key]; ok {
		return s
	}
	if s, ok := b.texts[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

func (b *Bundle) Supported(lang string) bool {
	_, ok := b.texts[lang]
	return ok
}

func (b *Bundle) Languages() []Language {
	out := make([]Language, len(b.langs))
	copy(out, b.langs)
	return out
}

// Match picks the best supported language for an Accept-Language header.
func (b *Bundle) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return b.langs[idx].Code
}

// Translator binds a Bundle to one language for templates.
type Translator struct {
	Lang   string
	bundle *Bundle
}

func (b *Bundle) For(lang string) Translator {
	if !b.Supported(lang) {
		lang = DefaultLanguage
	}
	return Translator{Lang: lang, bundle: b}
}

func (t Translator) T(key string) string {
	return t.bundle.Text(t.Lang, key)
}
