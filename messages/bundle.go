package messages

//go:generate go run github.com/napalu/goopt/v2/cmd/goopt-i18n-gen -i "locales/*.json" generate -o messages.go -p messages

import (
	"embed"
	"errors"
	"strings"

	"github.com/napalu/goopt/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewBundle loads the console message catalog (en, de, fr) with English as default.
func NewBundle() (*i18n.Bundle, error) {
	return i18n.NewBundleWithFS(localesFS, "locales")
}

// ParseLanguage maps the --language flag value to a supported tag.
// Unknown values yield language.Und.
func ParseLanguage(lang string) language.Tag {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		return language.English
	case "de":
		return language.German
	case "fr":
		return language.French
	default:
		return language.Und
	}
}

// SetLanguage switches both the user bundle and the goopt system bundle,
// so parser errors and our own messages come out in the same language.
func SetLanguage(bundle *i18n.Bundle, lang string) bool {
	if lang == "" || bundle == nil {
		return false
	}
	tag := ParseLanguage(lang)
	if tag == language.Und || tag == bundle.GetDefaultLanguage() {
		return false
	}
	bundle.SetDefaultLanguage(tag)
	i18n.Default().SetDefaultLanguage(tag)
	return true
}

// RenderError resolves translatable errors through tr, following the wrap chain.
// Errors that carry no translation key are rendered as-is.
func RenderError(tr i18n.Translator, err error) string {
	if err == nil {
		return ""
	}
	var te i18n.TranslatableError
	if tr == nil || !errors.As(err, &te) {
		return err.Error()
	}
	msg := tr.T(te.Key(), te.Args()...)
	if wrapped := te.Unwrap(); wrapped != nil {
		return msg + ": " + RenderError(tr, wrapped)
	}
	return msg
}
