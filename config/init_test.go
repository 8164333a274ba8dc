package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "v1", c.Prefix)
	require.Equal(t, ModeDebug, c.Mode)
	require.Equal(t, uint32(47), c.Stats.PRsMergedThisSemester)
	require.Equal(t, uint32(12), c.Stats.WorkshopsHeld)
	require.Equal(t, uint32(8), c.Stats.ProjectsContributedTo)
	require.Equal(t, 3600, c.Stats.CacheTTLSeconds)
	require.Equal(t, DefaultMarkdownMaxBytes, c.Blog.MarkdownMaxBytes)
	require.Empty(t, c.Redis.Host)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CLUB_PORT", "9090")
	t.Setenv("CLUB_MYSQL_HOST", "db.internal")
	t.Setenv("CLUB_STATS_PRS_MERGED", "51")
	t.Setenv("CLUB_REDIS_HOST", "cache.internal")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", c.Port)
	require.Equal(t, "db.internal", c.Mysql.Host)
	require.Equal(t, uint32(51), c.Stats.PRsMergedThisSemester)
	require.Equal(t, "cache.internal", c.Redis.Host)
}
