package stats

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

type statsFunc func(context.Context) (model.Stats, error)

func (f statsFunc) ClubStats(ctx context.Context) (model.Stats, error) { return f(ctx) }

func TestGet(t *testing.T) {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	source = statsFunc(func(context.Context) (model.Stats, error) {
		return model.Stats{ActiveMembers: 23, PRsMergedThisSemester: 47, WorkshopsHeld: 12, ProjectsContributedTo: 8}, nil
	})

	_, resp := test.DoRequest(t, Get)
	test.NoError(t, resp)
	require.Equal(t, uint32(23), test.DecodeData[model.Stats](t, resp).ActiveMembers)
}

func TestGetStoreDown(t *testing.T) {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	source = statsFunc(func(context.Context) (model.Stats, error) {
		return model.Stats{}, errors.New("dial tcp: connection refused")
	})

	w, resp := test.DoRequest(t, Get)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	test.ErrorEqual(t, response.ErrDatabase, resp)
}
