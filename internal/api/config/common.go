package config

// Config top-level configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	Site       SiteConfig       `mapstructure:"site"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig database settings
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// CloudinaryConfig remote media host credentials
type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// SiteConfig site-facing settings
type SiteConfig struct {
	// PageSize is the number of posts per listing page. Legacy
	// index.php?pid= offsets are multiples of this value.
	PageSize int `mapstructure:"page_size"`
	// PublicBaseURL is the externally visible origin used when rewriting
	// media URLs, e.g. "https://kazuru.example". Empty means path-relative.
	PublicBaseURL string `mapstructure:"public_base_url"`
	JWTSecret     string `mapstructure:"jwt_secret"`
}
