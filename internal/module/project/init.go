package project

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
		Projects(ctx context.Context) ([]model.Project, error)
	}
)

type ModuleProject struct{}

func (*ModuleProject) GetName() string {
	return "Project"
}

func (*ModuleProject) Init(resolver *content.Resolver) {
	log = logger.New("Project")
	source = resolver
}
