package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type KafkaConfig struct {
	BrokerList string `mapstructure:"broker_list"`
	Topic      string `mapstructure:"topic"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type ArchiveConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type ExportConfig struct {
	Sink         string             `mapstructure:"sink"` // console, json, csv, kafka, parquet, postgres
	OutputPath   string             `mapstructure:"output_path"`
	OutputFolder string             `mapstructure:"output_folder"`
	Destination  string             `mapstructure:"destination"` // "local" or "cloud", parquet only
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Archive      ArchiveConfig      `mapstructure:"archive"`
}

type Config struct {
	BaseURL         string        `mapstructure:"base_url"`
	Language        string        `mapstructure:"language"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	Export          ExportConfig  `mapstructure:"export"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("base_url", "http://localhost:8080")
	viper.SetDefault("language", "ru")
	viper.SetDefault("poll_interval", "30s")
	viper.SetDefault("export.sink", "console")

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file is fine, defaults and flags cover it
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
