package issue

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
		Issues(ctx context.Context) ([]model.Issue, error)
	}
)

type ModuleIssue struct{}

func (*ModuleIssue) GetName() string {
	return "Issue"
}

func (*ModuleIssue) Init(resolver *content.Resolver) {
	log = logger.New("Issue")
	source = resolver
}
