package conf

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the diagnostics settings of ccwc. None of them change what
// ccwc counts or prints on standard output.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

const envPrefix = "CCWC"

// New reads the configuration from CCWC_* environment variables and, when
// CCWC_CONFIG names one, a config file. The environment wins over the file.
func New() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "disabled")
	v.SetDefault("log_format", "console")

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
