package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver" validate:"required|in:file,redis,memory"`
	Dir      string `yaml:"dir"`
	Compress bool   `yaml:"compress"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Timeout  time.Duration `yaml:"timeout"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type AdminAccount struct {
	ID           string `yaml:"id"`
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"passwordHash"`
	Role         string `yaml:"role"`
}

type AuthConfig struct {
	JwtSecret string        `yaml:"jwtSecret" validate:"required"`
	TokenTTL  time.Duration `yaml:"tokenTTL"`
	Admin     AdminAccount  `yaml:"admin"`
}

type ContactConfig struct {
	Enabled  bool   `yaml:"enabled"`
	SmtpHost string `yaml:"smtpHost"`
	SmtpPort int    `yaml:"smtpPort"`
	SmtpUser string `yaml:"smtpUser"`
	SmtpPass string `yaml:"smtpPass"`
	To       string `yaml:"to"`
}

type BackupConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Dir      string        `yaml:"dir"`
	Interval time.Duration `yaml:"interval"`
	Keep     int           `yaml:"keep"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Storage   StorageConfig `yaml:"storage"`
	Redis     RedisConfig   `yaml:"redis"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Auth      AuthConfig    `yaml:"auth"`
	Contact   ContactConfig `yaml:"contact"`
	Backup    BackupConfig  `yaml:"backup"`
}
