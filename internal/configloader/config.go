package configloader

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"pbxscope.dev/analyzer/internal/pattern"
)

// Structure to bind application parameters
type Config struct {
	LogLevel     string `mapstructure:"LOG_LEVEL"`     // logrus library log level to be assigned
	DatabasePath string `mapstructure:"DATABASE_PATH"` // analysis database location
	ChunkSize    int    `mapstructure:"CHUNK_SIZE"`    // lines handed to each parsing worker
	MaxWorkers   int    `mapstructure:"MAX_WORKERS"`   // parsing worker cap, 0 picks a default
}

// Initialize default parameters values
func initDefaultConfiguration() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_PATH", pattern.DefaultDatabaseName)
	viper.SetDefault("CHUNK_SIZE", 10000)
	viper.SetDefault("MAX_WORKERS", 0)
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	initDefaultConfiguration()

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		viper.AddConfigPath(filepath.Join(root, "etc", applicationName))
		viper.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		viper.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	viper.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := viper.ReadInConfig(); configError != nil {
		logrus.Warn(configError.Error())
	}
	err = viper.Unmarshal(&config)

	return
}
