package config

type DatabaseConfig struct {
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Enabled  bool   `yaml:"enabled"`
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// JWTConfig : ключ подписи (base64) и время жизни токенов в формате time.ParseDuration
type JWTConfig struct {
	SecretKey       string `yaml:"secret_key"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
	Issuer          string `yaml:"issuer"`
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// InvalidationConfig : где хранится список отозванных токенов, "memory" или "redis"
type InvalidationConfig struct {
	Backend string `yaml:"backend"`
}

type PostsConfig struct {
	SourceURL    string `yaml:"source_url"`
	Timeout      string `yaml:"timeout"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}
