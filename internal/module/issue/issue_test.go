package issue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"club-content-api/internal/global/response"
	"club-content-api/internal/model"
	"club-content-api/test"

	"github.com/stretchr/testify/require"
)

type issuesFunc func(context.Context) ([]model.Issue, error)

func (f issuesFunc) Issues(ctx context.Context) ([]model.Issue, error) { return f(ctx) }

func TestListIssues(t *testing.T) {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	source = issuesFunc(func(context.Context) ([]model.Issue, error) {
		return []model.Issue{{ID: "is-1", Difficulty: model.DifficultyEasy, Tags: []string{"docs"}}}, nil
	})

	_, resp := test.DoRequest(t, ListIssues)
	test.NoError(t, resp)
	issues := test.DecodeData[[]model.Issue](t, resp)
	require.Len(t, issues, 1)
	require.Equal(t, model.DifficultyEasy, issues[0].Difficulty)

	source = issuesFunc(func(context.Context) ([]model.Issue, error) {
		return nil, errors.New("connection reset")
	})
	w, resp := test.DoRequest(t, ListIssues)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	test.ErrorEqual(t, response.ErrDatabase, resp)
}
