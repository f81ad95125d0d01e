// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration is declared with struct tags:
//
//	type AppConfig struct {
//		DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
//		LocalePath      string `env:"I18N_LOCALE_PATH" envDefault:"locales"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, which keeps startup
// code short:
//
//	cfg := config.MustLoad(&AppConfig{})
//
// A .env file in the working directory is read once per process before
// the first Load; variables already present in the environment are not
// overridden by the file.
package config
