package kvstore

type Config struct {
	URI          string `yaml:"-"`
	KeyPrefix    string `yaml:"key_prefix"`
	QueryTimeout int16  `yaml:"query_timeout_in_ms"`
}
