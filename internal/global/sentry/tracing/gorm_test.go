package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func statement(sql string) *gorm.Statement {
	stmt := &gorm.Statement{}
	stmt.SQL.WriteString(sql)
	return stmt
}

func TestDescribeStatement(t *testing.T) {
	assert.Equal(t, "SELECT events", describeStatement(statement("SELECT uuid, title\nFROM events\nORDER BY created_at DESC")))
	assert.Equal(t, "UPDATE blog_posts", describeStatement(statement("UPDATE blog_posts SET views = views + 1 WHERE id = ?")))
	assert.Equal(t, "SELECT", describeStatement(statement("select 1")))
	assert.Equal(t, "unknown", describeStatement(statement("")))
	assert.Equal(t, "members", describeStatement(&gorm.Statement{Table: "members"}))
}
