package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type UploaderConfig struct {
	Timeout   int64  `yaml:"timeout_in_ms"`
	Bucket    string `yaml:"bucket"`
	PublicURL string `yaml:"public_url"`
}

type ReaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}
