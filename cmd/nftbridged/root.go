package main

import (
	"fmt"
	"strings"

	"github.com/arkade-os/nftbridge/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const configFileName = "nftbridged"

// EnvReplacer replaces `-` to `_`.
// This is used to map flag like `--my-param` to environment variables like `MY_PARAM`.
var envReplacer = strings.NewReplacer("-", "_")

func init() {
	viper.SetEnvPrefix("NFTBRIDGED")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(envReplacer)
}

// loadConfigFile reads the optional config file and uses it to fill every
// daemon flag not given on the command line or through the environment.
func loadConfigFile(c *cli.Context) error {
	if path := c.String(configFileFlagName); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(configFileName)
		viper.AddConfigPath(c.String(config.Datadir.Name))
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && !c.IsSet(configFileFlagName) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	log.Debugf("loaded config file %s", viper.ConfigFileUsed())

	for _, flag := range config.Flags {
		name := flag.Names()[0]
		if c.IsSet(name) || !viper.InConfig(name) {
			continue
		}
		if err := c.Set(name, viper.GetString(name)); err != nil {
			return fmt.Errorf("invalid value for %s in config file: %w", name, err)
		}
	}
	return nil
}
