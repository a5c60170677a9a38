package expiry

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.en.json
var localeFS embed.FS

const (
	msgExpired = "expiry_expired"
	msgWarning = "expiry_warning"
	msgValid   = "expiry_valid"
	msgInvalid = "expiry_invalid"
)

// localizer is loaded once from the embedded English catalogue.
var localizer = newLocalizer()

func newLocalizer() *i18n.Localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	if _, err := bundle.LoadMessageFileFS(localeFS, "locales/active.en.json"); err != nil {
		panic(fmt.Sprintf("expiry: load message catalogue: %v", err))
	}
	return i18n.NewLocalizer(bundle, language.English.String())
}

// message renders a plural-aware message for count.
func message(id string, count int) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]interface{}{"Count": count},
		PluralCount:  count,
	})
	if err != nil {
		return id
	}
	return msg
}
