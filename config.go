package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindConfig layers the configuration sources under the flags: an explicit
// flag wins, then an EQUICUT_* environment variable, then an optional
// equicut.yaml in the working directory or $HOME/.config/equicut, then the
// flag default.
func bindConfig(flags *pflag.FlagSet) error {
	viper.SetConfigName("equicut")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "equicut"))
	}
	viper.SetEnvPrefix("equicut")
	viper.AutomaticEnv()
	for _, key := range []string{"solver", "output", "verb", "timeout"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			return errors.Wrapf(err, "could not bind flag %q", key)
		}
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "could not read configuration")
		}
	}
	return nil
}
