package database

import (
	"net"
	"time"

	"club-content-api/config"
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/sentry/tracing"
	"club-content-api/internal/model"
	"club-content-api/tools"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// DSN 由配置拼出连接串，时间列按 UTC 解析
func DSN(cfg config.Mysql) string {
	c := mysqldriver.NewConfig()
	c.User = cfg.Username
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	c.DBName = cfg.DBName
	c.ParseTime = true
	c.Loc = time.UTC
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

func Init() {
	cfg := config.Get()

	gormConfig := &gorm.Config{}
	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	case config.ModeRelease:
		gormConfig.Logger = gormlogger.Discard
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg.Mysql)), gormConfig)
	tools.PanicOnErr(err)

	if tracing.IsEnabled() {
		tools.PanicOnErr(db.Use(tracing.NewGormTracingPlugin()))
	}

	DB = db

	// 表结构由运维脚本维护，仅开发环境自动建表
	if cfg.Mysql.AutoMigrate {
		tools.PanicOnErr(Migrate())
	}
}

func Migrate() error {
	logger.New("Database").Info("AutoMigrate content tables")
	return DB.AutoMigrate(model.Tables()...)
}
