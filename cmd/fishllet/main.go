// Command fishllet runs the Fishllet storefront.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fishllet/storefront/pkg/fishllet"
	"github.com/fishllet/storefront/pkg/fishllet/app"
	"github.com/fishllet/storefront/pkg/fishllet/catalog"
	"github.com/fishllet/storefront/pkg/fishllet/config"
	"github.com/fishllet/storefront/pkg/fishllet/locale"
	"github.com/fishllet/storefront/pkg/fishllet/router"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	catalogPath := flag.String("catalog", "", "path to a TOML catalog file (overrides config)")
	localeTag := flag.String("locale", "", "interface language, e.g. id or en (overrides config)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *localeTag != "" {
		cfg.Locale = *localeTag
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts, err := fishllet.OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fishllet.SetLogPath(opts.LogPath)
	fishllet.SetLogLevel(opts.LogLevel)

	// Everything that can fail on bad configuration happens before the
	// window opens.
	view, err := loadView(cfg.Catalog)
	if err != nil {
		fishllet.Fatal("Failed to load catalog", err)
	}

	loc, err := locale.New(cfg.Locale)
	if err != nil {
		fishllet.Fatal("Failed to load translations", err)
	}

	logger := fishllet.GetLogger()
	storefront := app.New(view, fishllet.NewViews(loc), logger)
	if _, err := storefront.Mount(logger); err != nil {
		fishllet.Fatal("Screen registry is incomplete", err)
	}

	if err := fishllet.Init(opts); err != nil {
		fishllet.Fatal("Failed to start UI", err)
	}

	logger.Info("Loaded storefront", "products", view.Len(), "locale", loc.Language().String())

	err = storefront.Run()
	fishllet.Close()

	if err != nil {
		var cfgErr *router.ConfigurationError
		if errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func loadView(cfg config.CatalogConfig) (catalog.View, error) {
	title, c := catalog.DefaultTitle(), catalog.Default()

	if cfg.Path != "" {
		var err error
		if title, c, err = catalog.Load(cfg.Path); err != nil {
			return catalog.View{}, err
		}
	}
	if cfg.Title != "" {
		title = cfg.Title
	}
	if title == "" {
		title = catalog.DefaultTitle()
	}

	return catalog.NewView(title, c), nil
}
