package minio

type ClientConfig struct {
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
	Bucket    string `yaml:"bucket"`
}

type UploaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type GetterConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
