package bootstrap

import (
	"fmt"

	"gin-storefront/internal/i18n"
	"gin-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var I18nModule = fx.Module("i18n",
	fx.Provide(
		NewLocaleTable,
	),
)

// NewLocaleTable fails when a configured locale has no text bundle.
func NewLocaleTable(cfg config.Config) (*i18n.Table, error) {
	table, err := i18n.NewTable(cfg.Locale.Default)
	if err != nil {
		return nil, fmt.Errorf("failed to load locale table: %w", err)
	}
	for _, locale := range cfg.Locale.Supported {
		if !table.Has(locale) {
			return nil, fmt.Errorf("locale %s is configured but has no text bundle", locale)
		}
	}
	return table, nil
}
