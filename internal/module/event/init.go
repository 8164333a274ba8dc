package event

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
		Events(ctx context.Context) ([]model.Event, error)
	}
)

type ModuleEvent struct{}

func (*ModuleEvent) GetName() string {
	return "Event"
}

func (*ModuleEvent) Init(resolver *content.Resolver) {
	log = logger.New("Event")
	source = resolver
}
