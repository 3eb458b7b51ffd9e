package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message IDs against the embedded catalogue.
// It is shared by the window and the command line report.
type Translator struct {
	Bundle    *i18n.Bundle
	Localizer *i18n.Localizer
	Languages []string
}

// NewTranslator loads every embedded active.<lang>.json file.
func NewTranslator() *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	t := &Translator{Bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return t
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		t.Languages = append(t.Languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	t.Localizer = i18n.NewLocalizer(bundle, config.DefaultLanguage)
	return t
}

// Msg translates a key, returning the key itself when it is unknown.
func (t *Translator) Msg(key string) string {
	return t.MsgWith(key, nil, key)
}

// MsgWith translates a templated key, returning fallback on any failure.
func (t *Translator) MsgWith(key string, data map[string]interface{}, fallback string) string {
	if t == nil || t.Localizer == nil {
		return fallback
	}
	msg, err := t.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return fallback
	}
	return msg
}

// ErrorMessage maps a validation failure to its user-facing sentence.
func (t *Translator) ErrorMessage(err error) string {
	var key string
	switch {
	case errors.Is(err, engine.ErrMissingField):
		key = config.TKeyErrMissing
	case errors.Is(err, engine.ErrOutOfRange):
		key = config.TKeyErrRange
	case errors.Is(err, engine.ErrInvalidCalendarDate):
		key = config.TKeyErrInvalid
	case errors.Is(err, engine.ErrFutureDate):
		key = config.TKeyErrFuture
	default:
		return err.Error()
	}
	return t.MsgWith(key, nil, err.Error())
}
