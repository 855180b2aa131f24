package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the per-session application configuration. Column names and
// sentinel strings are fixed identifiers for one statement vendor's layout;
// they ship with defaults for the supported card company and can be
// overridden from an analyzer.yaml next to the binary.
type Config struct {
	MerchantColumn string   `mapstructure:"merchant_column"`
	AmountColumn   string   `mapstructure:"amount_column"`
	DateMarkers    []string `mapstructure:"date_markers"`
	Sentinels      []string `mapstructure:"sentinels"`
	QuickKeywords  []string `mapstructure:"quick_keywords"`

	RulesPath  string `mapstructure:"rules_path"`
	ExportDir  string `mapstructure:"export_dir"`
	RecentPath string `mapstructure:"recent_path"`
	LogPath    string `mapstructure:"log_path"`
}

// Load reads configuration from the given file, or from ./analyzer.yaml when
// path is empty. A missing config file is fine: defaults cover the supported
// statement layout.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("merchant_column", "이용하신 가맹점")
	v.SetDefault("amount_column", "이용금액")
	v.SetDefault("date_markers", []string{"일자", "승인일", "거래일", "이용일"})
	v.SetDefault("sentinels", []string{"이용하신 가맹점", "연회비 할인"})
	v.SetDefault("quick_keywords", []string{"노래방"})
	v.SetDefault("rules_path", "rules.yaml")
	v.SetDefault("export_dir", ".")
	v.SetDefault("recent_path", "recent_files.json")
	v.SetDefault("log_path", "analyzer.log")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("analyzer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read analyzer.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
