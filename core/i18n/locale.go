// File: locale.go
// Title: Locale Matching and CLDR Rules
// Description: Matches requested locale tags and Accept-Language headers
//              against the loaded catalogs, and supplies number formatting
//              and plural rules from CLDR translators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-18 v0.2.0: Matching via x/text/language, plural rules and
//                       number formatting via go-playground/locales

package i18n

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	"golang.org/x/text/language"
)

// translatorFactories holds the CLDR data available per base language.
var translatorFactories = map[string]func() locales.Translator{
	"en": en.New,
	"de": de.New,
	"fr": fr.New,
}

// Resolve returns the loaded locale that best matches the requested tag,
// or the default locale when nothing matches.
func (m *Manager) Resolve(locale string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resolveLocked(locale)
}

func (m *Manager) resolveLocked(locale string) string {
	if _, ok := m.catalogs[locale]; ok {
		return locale
	}
	if locale == "" || m.matcher == nil {
		return m.defaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return m.defaultLocale
	}
	_, index, confidence := m.matcher.Match(tag)
	if confidence == language.No {
		return m.defaultLocale
	}
	return m.names[index]
}

// DetectLocale picks the best loaded locale for an HTTP Accept-Language
// header value.
func (m *Manager) DetectLocale(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return m.DefaultLocale()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	_, index, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return m.defaultLocale
	}
	return m.names[index]
}

// translator returns the CLDR translator for the base language of locale,
// falling back to English.
func (m *Manager) translator(locale string) locales.Translator {
	base := "en"
	if tag, err := language.Parse(locale); err == nil {
		b, _ := tag.Base()
		if _, ok := translatorFactories[b.String()]; ok {
			base = b.String()
		}
	}

	m.mu.RLock()
	tr, ok := m.translators[base]
	m.mu.RUnlock()
	if ok {
		return tr
	}

	tr = translatorFactories[base]()
	m.mu.Lock()
	m.translators[base] = tr
	m.mu.Unlock()
	return tr
}

// pluralCategory names a CLDR plural rule the way catalog keys do.
func pluralCategory(rule locales.PluralRule) string {
	switch rule {
	case locales.PluralRuleZero:
		return "zero"
	case locales.PluralRuleOne:
		return "one"
	case locales.PluralRuleTwo:
		return "two"
	case locales.PluralRuleFew:
		return "few"
	case locales.PluralRuleMany:
		return "many"
	default:
		return "other"
	}
}

// decimalSeparator reads the separator from translators that expose it.
// The locales.Translator interface itself does not.
func decimalSeparator(tr locales.Translator) string {
	if d, ok := tr.(interface{ Decimal() string }); ok {
		if sep := d.Decimal(); sep != "" {
			return sep
		}
	}
	return "."
}
