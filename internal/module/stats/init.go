package stats

import (
	"context"
	"log/slog"

	"club-content-api/internal/content"
	"club-content-api/internal/global/logger"
	"club-content-api/internal/model"
)

var (
	log    *slog.Logger
	source interface {
		ClubStats(ctx context.Context) (model.Stats, error)
	}
)

type ModuleStats struct{}

func (*ModuleStats) GetName() string {
	return "Stats"
}

func (*ModuleStats) Init(resolver *content.Resolver) {
	log = logger.New("Stats")
	source = resolver
}
