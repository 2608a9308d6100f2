// Package i18n holds the storefront's localized display strings.
//
// Strings are grouped into sections ("DISCOUNTS", "MAIN", ...) and loaded from
// embedded go-i18n TOML files, one file per locale. Lookups for a locale that
// has no file fall back to the default locale, which must always exist.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const DefaultLocale = "pt-BR"

const (
	SectionMain      = "MAIN"
	SectionDiscounts = "DISCOUNTS"
	SectionErrors    = "ERRORS"
)

const (
	KeyTitle               = "TITLE"
	KeyExpiration          = "EXPIRATION"
	KeyMetaDescription     = "META_DESCRIPTION"
	KeyStoreName           = "STORE_NAME"
	KeyTyCs                = "TYCS"
	KeyTyCsMetaDescription = "TYCS_META_DESCRIPTION"
	KeyVersion             = "VERSION"
	KeyGeneric             = "GENERIC"
)

// RequiredKeys lists every section/key the pages read. Each locale file must define all of them.
var RequiredKeys = map[string][]string{
	SectionMain:      {KeyStoreName, KeyTyCs, KeyTyCsMetaDescription, KeyVersion},
	SectionDiscounts: {KeyTitle, KeyExpiration, KeyMetaDescription},
	SectionErrors:    {KeyTitle, KeyGeneric},
}

//go:embed locales/active.*.toml
var localeFS embed.FS

// TextBundle maps section -> key -> localized string for one locale.
type TextBundle map[string]map[string]string

// Get returns the string for section/key, or "" when it is not defined.
func (b TextBundle) Get(section, key string) string {
	return b[section][key]
}

func (b TextBundle) clone() TextBundle {
	out := make(TextBundle, len(b))
	for section, keys := range b {
		copied := make(map[string]string, len(keys))
		for k, v := range keys {
			copied[k] = v
		}
		out[section] = copied
	}
	return out
}

// Table is the static locale -> TextBundle mapping. It is read-only after construction.
type Table struct {
	bundle        *goi18n.Bundle
	bundles       map[string]TextBundle
	defaultLocale string
}

// NewTable loads the embedded locale files.
func NewTable(defaultLocale string) (*Table, error) {
	return NewTableFromFS(localeFS, defaultLocale)
}

// MustDefaultTable loads the embedded locale files with the pt-BR default.
// A missing default bundle is a build defect, so it panics.
func MustDefaultTable() *Table {
	table, err := NewTable(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return table
}

// NewTableFromFS loads every locales/active.<locale>.toml file found in fsys.
func NewTableFromFS(fsys fs.FS, defaultLocale string) (*Table, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	paths, err := fs.Glob(fsys, "locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	bundle := goi18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Table{
		bundle:        bundle,
		bundles:       make(map[string]TextBundle, len(paths)),
		defaultLocale: defaultTag.String(),
	}
	for _, path := range paths {
		file, err := bundle.LoadMessageFileFS(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		text, err := textBundleFromMessages(file.Messages)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		locale := file.Tag.String()
		if err := checkRequiredKeys(text); err != nil {
			return nil, fmt.Errorf("locale %s: %w", locale, err)
		}
		t.bundles[locale] = text
	}

	if _, ok := t.bundles[t.defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %s has no text bundle", t.defaultLocale)
	}
	return t, nil
}

func textBundleFromMessages(messages []*goi18n.Message) (TextBundle, error) {
	text := TextBundle{}
	for _, m := range messages {
		section, key, ok := strings.Cut(m.ID, ".")
		if !ok || section == "" || key == "" {
			return nil, fmt.Errorf("message %q is not inside a section", m.ID)
		}
		if text[section] == nil {
			text[section] = map[string]string{}
		}
		text[section][key] = m.Other
	}
	return text, nil
}

func checkRequiredKeys(text TextBundle) error {
	var missing []string
	for section, keys := range RequiredKeys {
		for _, key := range keys {
			if _, ok := text[section][key]; !ok {
				missing = append(missing, section+"."+key)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Resolve returns the bundle for locale, or the default locale's bundle when
// locale is not a known key. Matching is exact: "ES_ES" is not "es-ES".
func (t *Table) Resolve(locale string) TextBundle {
	if text, ok := t.bundles[locale]; ok {
		return text.clone()
	}
	return t.bundles[t.defaultLocale].clone()
}

// Has reports whether locale has its own bundle.
func (t *Table) Has(locale string) bool {
	_, ok := t.bundles[locale]
	return ok
}

// Default returns the fallback locale.
func (t *Table) Default() string {
	return t.defaultLocale
}

// Locales returns the known locales, sorted.
func (t *Table) Locales() []string {
	out := make([]string, 0, len(t.bundles))
	for locale := range t.bundles {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Localize looks up a dotted message id ("ERRORS.GENERIC") through go-i18n,
// trying locale first and then the default locale. Unknown ids return the id.
func (t *Table) Localize(locale, id string) string {
	localizer := goi18n.NewLocalizer(t.bundle, locale, t.defaultLocale)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
