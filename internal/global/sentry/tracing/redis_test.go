package tracing

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestCommandKey(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "club_stats", commandKey(redis.NewStringCmd(ctx, "get", "club_stats")))
	assert.Equal(t, "blog_markdown:*", commandKey(redis.NewStringCmd(ctx, "get", "blog_markdown:intro")))
	assert.Equal(t, "", commandKey(redis.NewStatusCmd(ctx, "ping")))
}

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "https://storage.example.org/posts/a.md", sanitizeURL("https://storage.example.org/posts/a.md?X-Amz-Signature=abc"))
	assert.Equal(t, "unknown", sanitizeURL(""))
	assert.Equal(t, "unknown", sanitizeURL("::"))
}
