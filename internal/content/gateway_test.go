package content

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGateway(t *testing.T) (*SQLGateway, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return NewSQLGateway(db), mock
}

func TestSQLGatewayListEvents(t *testing.T) {
	g, mock := newMockGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM events\nORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "title", "event_type", "recurring"}).
			AddRow("ev-2", "Panel night", "Panel", int64(0)).
			AddRow("ev-1", "Hack night", "Hackathon", int64(1)))

	rows, err := g.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "ev-2", rows[0].String("uuid"))
	require.True(t, rows[1].Bool("recurring"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGatewayTinyIntBoolean(t *testing.T) {
	g, mock := newMockGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM events")).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "event_type", "recurring"}).
			AddRow("ev-1", "Hackathon", int8(1)))

	rows, err := g.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, MapEvent(rows[0]).Recurring)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGatewayQueryError(t *testing.T) {
	g, mock := newMockGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM issues")).WillReturnError(errStoreDown)

	_, err := g.ListIssues(context.Background())
	require.ErrorIs(t, err, errStoreDown)
	require.Contains(t, err.Error(), "query issues")
}

func TestSQLGatewayByIDsEmpty(t *testing.T) {
	g, mock := newMockGateway(t)

	rows, err := g.ListBlogPostsByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGatewayByIDs(t *testing.T) {
	g, mock := newMockGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id IN (?,?)")).
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}).AddRow("a", "alpha"))

	rows, err := g.ListBlogPostsByIDs(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "alpha", rows[0].String("slug"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGatewayBySlugNotFound(t *testing.T) {
	g, mock := newMockGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE slug = ?")).
		WithArgs("nonexistent").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}))

	_, found, err := g.GetBlogPostBySlug(context.Background(), "nonexistent")
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGatewayCountAndIncrement(t *testing.T) {
	g, mock := newMockGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta(queryCountMembers)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(int64(23)))
	mock.ExpectExec(regexp.QuoteMeta(execIncrementViews)).
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := g.CountMembers(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(23), count)

	require.NoError(t, g.IncrementBlogPostViews(context.Background(), "a"))
	require.NoError(t, mock.ExpectationsWereMet())
}
