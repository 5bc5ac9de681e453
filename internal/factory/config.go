package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcoot/frogfen/internal/api"
	redisstorage "github.com/mcoot/frogfen/internal/storage/redis"
)

// EnvPrefix namespaces environment variables, e.g. FROGFEN_STORAGE_TYPE
const EnvPrefix = "FROGFEN"

// Settings is the full server configuration: the app factory config plus the
// HTTP server config
type Settings struct {
	App       Config
	Server    api.ServerConfig
	LogLevel  string
	LogFormat string
}

// SetDefaults registers default values for every setting on v
func SetDefaults(v *viper.Viper) {
	server := api.DefaultServerConfig()
	redisCfg := redisstorage.DefaultConfig()

	v.SetDefault("storage.type", StorageTypeMemory)
	v.SetDefault("dictionary.path", "data/words.txt")
	v.SetDefault("rules.path", "")
	v.SetDefault("redis.url", redisCfg.URL)
	v.SetDefault("redis.pool_size", redisCfg.PoolSize)
	v.SetDefault("redis.min_idle_conns", redisCfg.MinIdleConns)
	v.SetDefault("redis.session_ttl", redisCfg.SessionTTL)
	v.SetDefault("server.host", server.Host)
	v.SetDefault("server.port", server.Port)
	v.SetDefault("server.read_timeout", server.ReadTimeout)
	v.SetDefault("server.write_timeout", server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", server.ShutdownTimeout)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// NewViper returns a viper instance that reads FROGFEN_-prefixed environment
// variables (dots become underscores) and, when configFile is set, that file
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// LoadConfig builds Settings from v
func LoadConfig(v *viper.Viper) (Settings, error) {
	s := Settings{
		App: Config{
			DictionaryPath: v.GetString("dictionary.path"),
			RulesPath:      v.GetString("rules.path"),
			StorageType:    strings.ToLower(v.GetString("storage.type")),
		},
		Server: api.ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
	}

	switch s.App.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		url := v.GetString("redis.url")
		if url == "" {
			return Settings{}, fmt.Errorf("redis.url required when storage.type is %s", StorageTypeRedis)
		}
		s.App.RedisConfig = &redisstorage.Config{
			URL:          url,
			PoolSize:     v.GetInt("redis.pool_size"),
			MinIdleConns: v.GetInt("redis.min_idle_conns"),
			SessionTTL:   v.GetDuration("redis.session_ttl"),
		}
	default:
		return Settings{}, fmt.Errorf("invalid storage.type %q: must be %s or %s",
			s.App.StorageType, StorageTypeMemory, StorageTypeRedis)
	}

	if s.Server.Port < 0 || s.Server.Port > 65535 {
		return Settings{}, fmt.Errorf("invalid server.port %d", s.Server.Port)
	}
	if s.Server.ShutdownTimeout <= 0 {
		s.Server.ShutdownTimeout = 30 * time.Second
	}

	return s, nil
}
