package cmd

import (
	"github.com/surfeosc/catalogd/internal/catalog"
	"github.com/surfeosc/catalogd/internal/config"
	oerrors "github.com/surfeosc/catalogd/internal/errors"
	"github.com/surfeosc/catalogd/internal/output"
)

// requireConfig returns the configuration loaded at startup, or a
// configuration error when loading failed.
func requireConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, &oerrors.DetailError{
			Type:    "configuration failed",
			Message: configErr.Error(),
			Hint:    "Check the config file syntax, or run 'catalogd config init'.",
			Cause:   oerrors.ErrConfiguration,
		}
	}
	if loadedConfig == nil {
		return nil, oerrors.Wrap(oerrors.ErrConfiguration, "configuration not loaded")
	}
	return loadedConfig, nil
}

// validateConfig runs the CUE schema and semantic checks over the config.
func validateConfig(cfg *config.Config) error {
	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	return validator.Validate(cfg)
}

// sourcesFromConfig maps the catalogue block onto loader inputs, in
// deterministic version order.
func sourcesFromConfig(cfg *config.Config) []catalog.VersionSource {
	tokens := cfg.Catalogue.VersionTokens()
	sources := make([]catalog.VersionSource, 0, len(tokens))
	for _, token := range tokens {
		vc := cfg.Catalogue.Versions[token]
		sources = append(sources, catalog.VersionSource{
			Version:  token,
			Schema:   vc.Schema,
			Fixtures: vc.Fixtures,
		})
	}
	return sources
}

// buildCatalog validates the configuration and loads the full catalogue.
// Everything here is fail-fast: a catalogue this function returns is fully
// valid.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	output.Debug("building catalogue", "versions", cfg.Catalogue.VersionTokens())

	return catalog.Build(sourcesFromConfig(cfg), cfg.Catalogue.Latest)
}
