package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvSuffix = "_CONFIG_FILE"

// Load fills out from defaults, an optional YAML file and the environment,
// in increasing order of precedence. The file is taken from --config or
// from <SERVICE>_CONFIG_FILE.
func Load(service string, defaults map[string]any, out any) error {
	return LoadArgs(service, os.Args[1:], defaults, out)
}

func LoadArgs(service string, args []string, defaults map[string]any, out any) error {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := configFilepath(service, args)
	if err != nil {
		return err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func configFilepath(service string, args []string) (string, error) {
	cmdLine := pflag.NewFlagSet(service, pflag.ContinueOnError)
	cmdLine.ParseErrorsWhitelist.UnknownFlags = true
	arg := cmdLine.String("config", "", "config file")
	if err := cmdLine.Parse(args); err != nil {
		return "", fmt.Errorf("failed to parse flags: %w", err)
	}
	if env, ok := os.LookupEnv(envName(service)); ok {
		return env, nil
	}
	return *arg, nil
}

func envName(service string) string {
	return strings.ToUpper(strings.ReplaceAll(service, "-", "_")) + configFileEnvSuffix
}
