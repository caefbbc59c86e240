package providers

import (
	"fmt"
	"path/filepath"
	"portfolio/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("redis.timeout", 2*time.Second)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("auth.tokenTTL", 12*time.Hour)
	v.SetDefault("auth.admin.role", "admin")
	v.SetDefault("contact.smtpPort", 587)
	v.SetDefault("backup.keep", 10)

	v.BindEnv("logger.level", "PORTFOLIO_LOG_LEVEL")
	v.BindEnv("storage.driver", "PORTFOLIO_STORAGE_DRIVER")
	v.BindEnv("storage.dir", "PORTFOLIO_STORAGE_DIR")
	v.BindEnv("redis.addr", "PORTFOLIO_REDIS_ADDR")
	v.BindEnv("redis.password", "PORTFOLIO_REDIS_PASSWORD")
	v.BindEnv("auth.jwtSecret", "PORTFOLIO_JWT_SECRET")
	v.BindEnv("auth.admin.email", "PORTFOLIO_ADMIN_EMAIL")
	v.BindEnv("auth.admin.passwordHash", "PORTFOLIO_ADMIN_PASSWORD_HASH")
	v.BindEnv("contact.smtpUser", "PORTFOLIO_SMTP_USER")
	v.BindEnv("contact.smtpPass", "PORTFOLIO_SMTP_PASS")
	v.BindEnv("cache.enabled", "PORTFOLIO_CACHE_ENABLED")
	v.BindEnv("cache.size", "PORTFOLIO_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PortfolioContentDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
