package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

const envPrefix = "CLUB"

var (
	cfg  *Config
	once sync.Once
)

// Init 读取配置：.env -> config.yaml -> CLUB_* 环境变量，后者覆盖前者
func Init() {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		cfg = c
	})
}

// Get 获取全局配置，未初始化时先初始化
func Get() *Config {
	if cfg == nil {
		Init()
	}
	return cfg
}

// Set 替换全局配置，测试使用
func Set(c *Config) {
	once.Do(func() {})
	cfg = c
}

func Load() (*Config, error) {
	// .env 不存在是正常情况
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		v.SetConfigFile(p)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Host", "0.0.0.0")
	v.SetDefault("Port", "8080")
	v.SetDefault("Prefix", "v1")
	v.SetDefault("Mode", string(ModeDebug))

	v.SetDefault("Mysql.Host", "127.0.0.1")
	v.SetDefault("Mysql.Port", "3306")
	v.SetDefault("Mysql.Username", "root")
	v.SetDefault("Mysql.DBName", "club")

	v.SetDefault("Redis.Port", "6379")

	v.SetDefault("Log.level", "info")
	v.SetDefault("Log.max_size", 100)
	v.SetDefault("Log.max_backups", 5)
	v.SetDefault("Log.max_age", 30)

	v.SetDefault("OTel.service_name", "club-content-api")

	v.SetDefault("Stats.prs_merged_this_semester", 47)
	v.SetDefault("Stats.workshops_held", 12)
	v.SetDefault("Stats.projects_contributed_to", 8)
	v.SetDefault("Stats.cache_ttl_seconds", 3600)

	v.SetDefault("Blog.markdown_cache_ttl_seconds", 600)
	v.SetDefault("Blog.markdown_timeout_seconds", 10)
	v.SetDefault("Blog.markdown_max_bytes", DefaultMarkdownMaxBytes)
}
