package origin

type Config struct {
	ConnectTimeout int    `yaml:"connect_timeout_in_ms"`
	HeaderTimeout  int    `yaml:"header_timeout_in_ms"`
	UserAgent      string `yaml:"user_agent"`
}
