package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host      string `envconfig:"HOST"`
	Port      string `envconfig:"PORT"`
	Prefix    string `envconfig:"PREFIX"`
	Mode      Mode   `envconfig:"MODE"`
	Mysql     Mysql
	Redis     Redis
	Log       Log    `mapstructure:"Log"`
	Sentry    Sentry `mapstructure:"Sentry"`
	OTel      OTel   `mapstructure:"OTel"`
	Stats     Stats
	Blog      Blog
	RateLimit RateLimit `mapstructure:"RateLimit"`
}

type Mysql struct {
	Host        string `envconfig:"HOST"`
	Port        string `envconfig:"PORT"`
	Username    string `envconfig:"USERNAME"`
	Password    string `envconfig:"PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" mapstructure:"auto_migrate"` // 开发环境下自动建表
}

// Redis Host 为空时使用进程内缓存
type Redis struct {
	Host     string `envconfig:"HOST" yaml:"host"`
	Port     string `envconfig:"PORT" yaml:"port"`
	Password string `envconfig:"PASSWORD" yaml:"password"`
	DB       int    `envconfig:"DB" yaml:"db"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string  `envconfig:"DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"` // 性能追踪采样率
	Tracing     SentryTracing
}

type SentryTracing struct {
	DBSlowThresholdMs    int  `envconfig:"DB_SLOW_THRESHOLD_MS" mapstructure:"db_slow_threshold_ms"`
	RedisSlowThresholdMs int  `envconfig:"REDIS_SLOW_THRESHOLD_MS" mapstructure:"redis_slow_threshold_ms"`
	TraceHTTPCalls       bool `envconfig:"TRACE_HTTP_CALLS" mapstructure:"trace_http_calls"`
}

type OTel struct {
	Enable      bool   `envconfig:"ENABLE" mapstructure:"enable"`
	AgentHost   string `envconfig:"AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"AGENT_PORT" mapstructure:"agent_port"`
	ServiceName string `envconfig:"SERVICE_NAME" mapstructure:"service_name"`
}

// Stats 中除成员数以外的计数不来自数据库，由运营方手动维护
type Stats struct {
	PRsMergedThisSemester uint32 `envconfig:"PRS_MERGED" mapstructure:"prs_merged_this_semester"`
	WorkshopsHeld         uint32 `envconfig:"WORKSHOPS_HELD" mapstructure:"workshops_held"`
	ProjectsContributedTo uint32 `envconfig:"PROJECTS_CONTRIBUTED" mapstructure:"projects_contributed_to"`
	CacheTTLSeconds       int    `envconfig:"CACHE_TTL" mapstructure:"cache_ttl_seconds"`
}

// DefaultMarkdownMaxBytes 单篇正文的响应体上限
const DefaultMarkdownMaxBytes = 2 << 20

type Blog struct {
	MarkdownCacheTTLSeconds int `envconfig:"MARKDOWN_CACHE_TTL" mapstructure:"markdown_cache_ttl_seconds"`
	MarkdownTimeoutSeconds  int `envconfig:"MARKDOWN_TIMEOUT" mapstructure:"markdown_timeout_seconds"`
	MarkdownMaxBytes        int `envconfig:"MARKDOWN_MAX_BYTES" mapstructure:"markdown_max_bytes"`
}

// RateLimit PerSecond 为 0 时不限流
type RateLimit struct {
	PerSecond float64 `envconfig:"PER_SECOND" mapstructure:"per_second"`
	Burst     int     `envconfig:"BURST" mapstructure:"burst"`
}
