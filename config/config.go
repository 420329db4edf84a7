package config

import (
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"sitesnap/internal/infrastructure/broker"
	"sitesnap/internal/infrastructure/database"
	"sitesnap/internal/infrastructure/minio"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIOReader     minio.ReaderConfig     `yaml:"minio_reader"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Archive         ArchiveConfig          `yaml:"archive"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

type ArchiveConfig struct {
	Dir string `yaml:"dir"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return Error{reason: "default.address must be set"}
	}

	if c.MinIOUploader.Bucket == "" || c.MinIOReader.Bucket == "" {
		return Error{reason: "minio bucket must be set"}
	}

	if c.DBConfig.DBName == "" {
		return Error{reason: "db_config.db_name must be set"}
	}

	return nil
}
