package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rendau/txtlocal/adapters/sms/txtlocal"
	"github.com/rendau/txtlocal/tools"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TXTLOCAL"

type confSt struct {
	txtlocal.CredsSt `mapstructure:",squash"`

	Debug    bool          `mapstructure:"debug"`
	LogLevel string        `mapstructure:"log_level"`
	ApiUrl   string        `mapstructure:"api_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Format   string        `mapstructure:"format"`
	Sender   string        `mapstructure:"sender"`
}

func defaultConf() *confSt {
	return &confSt{
		LogLevel: "warn",
		ApiUrl:   txtlocal.ApiUrl,
		Timeout:  30 * time.Second,
	}
}

// loadConf resolves flags > env (TXTLOCAL_*) > config file > defaults.
func loadConf(cfgPath string, flags *pflag.FlagSet) (*confSt, error) {
	viper.Reset()

	tools.SetViperDefaultsFromObj(defaultConf())

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgPath != "" {
		viper.SetConfigFile(cfgPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	for key, flagName := range map[string]string{
		"debug":     "debug",
		"log_level": "log-level",
		"format":    "format",
		"sender":    "sender",
	} {
		if f := flags.Lookup(flagName); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	conf := &confSt{}

	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return conf, nil
}
