package event

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"club-content-api/internal/content"
	"club-content-api/internal/global/cache"
	"club-content-api/internal/model"
	"club-content-api/test"

	"github.com/stretchr/testify/require"
)

// emptyGateway 模拟尚未录入任何内容的数据库
type emptyGateway struct{}

func (emptyGateway) ListEvents(context.Context) ([]content.Row, error)   { return nil, nil }
func (emptyGateway) ListIssues(context.Context) ([]content.Row, error)   { return nil, nil }
func (emptyGateway) ListProjects(context.Context) ([]content.Row, error) { return nil, nil }
func (emptyGateway) ListBlogPosts(context.Context) ([]content.Row, error) {
	return nil, nil
}
func (emptyGateway) ListBlogPostsByIDs(context.Context, []string) ([]content.Row, error) {
	return nil, nil
}
func (emptyGateway) GetBlogPostBySlug(context.Context, string) (content.Row, bool, error) {
	return nil, false, nil
}
func (emptyGateway) CountMembers(context.Context) (int64, error)         { return 0, nil }
func (emptyGateway) IncrementBlogPostViews(context.Context, string) error { return nil }

func TestListEventsFallback(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	log = discard
	source = content.NewResolver(emptyGateway{}, cache.NewMemory(), nil, discard, content.Options{})

	_, resp := test.DoRequest(t, ListEvents)
	test.NoError(t, resp)

	events := test.DecodeData[[]model.Event](t, resp)
	require.Len(t, events, 3)
	require.Equal(t, "550e8400-e29b-41d4-a716-446655440001", events[0].ID)
}
