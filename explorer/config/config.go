package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/pipeline"
	"bikeshare/stations"
	"bikeshare/utils"
)

const (
	envPrefix       = "bikeshare"
	defaultLogLevel = "warn"
)

var ErrInvalidConfig = errors.New("invalid config")

// Environment contains the values that can be overridden with BIKESHARE_* environment variables
type Environment struct {
	ConfigPath string `envconfig:"CONFIG" default:"./explorer/config/config.yaml"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
	DataDir    string `envconfig:"DATA_DIR"`
	RabbitURL  string `envconfig:"RABBIT_URL"`
}

type ExplorerConfig struct {
	LogLevel        string                        `yaml:"log_level"`
	Datasets        pipeline.Datasets             `yaml:"datasets"`
	StationsColumns stations.Columns              `yaml:"stations_columns"`
	Publisher       communication.PublisherConfig `yaml:"publisher"`
}

// LoadConfig reads the environment, then the config file it points to, and applies the
// environment overrides on top of the file. Variables in a .env file of the working directory are
// added to the environment when they are not already set.
func LoadConfig() (*ExplorerConfig, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	var env Environment
	err := envconfig.Process(envPrefix, &env)
	if err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	configFile, err := utils.GetConfigFile(env.ConfigPath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(configFile, env)
}

// ParseConfig parses a yaml config, applies the environment overrides, fills defaults and validates the result
func ParseConfig(configFile []byte, env Environment) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if env.LogLevel != "" {
		explorerConfig.LogLevel = env.LogLevel
	}
	if env.DataDir != "" {
		explorerConfig.Datasets.DataDir = env.DataDir
	}
	if env.RabbitURL != "" {
		explorerConfig.Publisher.URL = env.RabbitURL
	}

	if explorerConfig.LogLevel == "" {
		explorerConfig.LogLevel = defaultLogLevel
	}
	explorerConfig.Datasets = explorerConfig.Datasets.Normalize()
	explorerConfig.Datasets.Columns = explorerConfig.Datasets.Columns.WithDefaults()
	explorerConfig.StationsColumns = explorerConfig.StationsColumns.WithDefaults()

	err = validator.New().Struct(explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	return &explorerConfig, nil
}
