package pgstore

type Config struct {
	URI          string `yaml:"-"`
	Table        string `yaml:"table"`
	MaxConns     int32  `yaml:"max_conns"`
	QueryTimeout int16  `yaml:"query_timeout_in_ms"`
}
