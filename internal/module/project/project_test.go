package project

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"club-content-api/internal/model"
	"club-content-api/test"

	"github.com/stretchr/testify/require"
)

type projectsFunc func(context.Context) ([]model.Project, error)

func (f projectsFunc) Projects(ctx context.Context) ([]model.Project, error) { return f(ctx) }

func TestListProjectsContributorsIsArray(t *testing.T) {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	source = projectsFunc(func(context.Context) ([]model.Project, error) {
		return []model.Project{{ID: "pr-1", Contributors: []model.Member{}, TechStack: []string{}, SkillsNeeded: []string{}}}, nil
	})

	w, resp := test.DoRequest(t, ListProjects)
	test.NoError(t, resp)
	require.Contains(t, w.Body.String(), `"contributors":[]`)
}
