// Package config loads the pipeline configuration: connection parameters,
// the load query, the column role lists, and the analysis knobs.
// Precedence: environment (HOUSEDA_*) > config file > defaults. The
// defaults reproduce the Nashville housing lab setup.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/DimaChesnokov/ConnectPostgreSQL/postgres"
)

// Config is the explicit configuration passed into every stage.
type Config struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Database string `mapstructure:"database" yaml:"database"`

	Table    string `mapstructure:"table" yaml:"table"`
	RowLimit int    `mapstructure:"row_limit" yaml:"row_limit"`
	// QueryOverride replaces the composed "SELECT * FROM table LIMIT n"
	// query when set.
	QueryOverride string `mapstructure:"query" yaml:"query,omitempty"`

	// Column role lists drive the profilers. The encoder ignores them and
	// selects columns by storage type instead.
	NominalColumns      []string `mapstructure:"nominal_columns" yaml:"nominal_columns"`
	OrdinalColumns      []string `mapstructure:"ordinal_columns" yaml:"ordinal_columns"`
	QuantitativeColumns []string `mapstructure:"quantitative_columns" yaml:"quantitative_columns"`

	TargetColumn string  `mapstructure:"target_column" yaml:"target_column"`
	Alpha        float64 `mapstructure:"alpha" yaml:"alpha"`
	HeatmapPath  string  `mapstructure:"heatmap_path" yaml:"heatmap_path"`
	LogLevel     string  `mapstructure:"log_level" yaml:"log_level"`
}

// Query returns the SQL to load: the override if set, otherwise the fixed
// SELECT * over the configured table and row limit.
func (c *Config) Query() string {
	if c.QueryOverride != "" {
		return c.QueryOverride
	}
	return postgres.BuildQuery(c.Table, c.RowLimit)
}

// CategoricalColumns returns the profiler's categorical list: the nominal
// columns followed by the ordinal ones.
func (c *Config) CategoricalColumns() []string {
	out := make([]string, 0, len(c.NominalColumns)+len(c.OrdinalColumns))
	out = append(out, c.NominalColumns...)
	out = append(out, c.OrdinalColumns...)
	return out
}

// Load loads configuration from file, env, and defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HOUSEDA")
	v.AutomaticEnv()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("houseda")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to path as YAML.
func Save(c *Config, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "povt-cluster.tstu.tver.ru")
	v.SetDefault("port", 5432)
	v.SetDefault("user", "mpi")
	v.SetDefault("password", "135a1")
	v.SetDefault("database", "db_housing")

	v.SetDefault("table", "Nashville_Housing")
	v.SetDefault("row_limit", 1000)

	v.SetDefault("nominal_columns", []string{
		"uniqueid", "parcelid", "landuse", "propertyaddress", "legalreference",
		"soldasvacant", "ownername", "owneraddress", "taxdistrict",
	})
	v.SetDefault("ordinal_columns", []string{"saledate", "yearbuilt"})
	v.SetDefault("quantitative_columns", []string{
		"saleprice", "acreage", "landvalue", "buildingvalue", "totalvalue",
		"bedrooms", "fullbath", "halfbath",
	})

	v.SetDefault("target_column", "saleprice")
	v.SetDefault("alpha", 0.05)
	v.SetDefault("heatmap_path", "correlation_matrix.png")
	v.SetDefault("log_level", "info")
}
