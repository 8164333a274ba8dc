package tracing

import (
	"strings"
	"time"

	"club-content-api/config"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 为查询创建 span；只保留超过慢查询阈值的 span，阈值为 0 时全部保留
type GormTracingPlugin struct {
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	ms := config.Get().Sentry.Tracing.DBSlowThresholdMs
	return &GormTracingPlugin{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

// Initialize 内容查询走 Raw/Row，写入只有浏览量累加（Exec 也走 Raw 回调）
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register(callbackPrefix+":before_query", p.before("db.sql.query")); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register(callbackPrefix+":before_row", p.before("db.sql.row")); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register(callbackPrefix+":before_raw", p.before("db.sql.exec")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register(callbackPrefix+":after_query", p.after); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register(callbackPrefix+":after_row", p.after); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register(callbackPrefix+":after_raw", p.after)
}

func (p *GormTracingPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil {
			return
		}
		db.InstanceSet(gormStartKey, time.Now())

		span := startChild(db.Statement.Context, operation, describeStatement(db.Statement))
		if span == nil {
			return
		}
		span.SetData("db.system", "mysql")
		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	start, _ := startVal.(time.Time)
	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	if p.slowThreshold > 0 && time.Since(start) < p.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}
	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}

// describeStatement 只取语句动词与目标表，不记录参数
func describeStatement(stmt *gorm.Statement) string {
	if stmt.Table != "" {
		return stmt.Table
	}
	fields := strings.Fields(stmt.SQL.String())
	if len(fields) == 0 {
		return "unknown"
	}
	verb := strings.ToUpper(fields[0])
	for i, f := range fields[:len(fields)-1] {
		switch strings.ToUpper(f) {
		case "FROM", "UPDATE":
			return verb + " " + fields[i+1]
		}
	}
	return verb
}
