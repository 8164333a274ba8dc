package ping

import (
	"log/slog"

	"club-content-api/internal/content"
	"club-content-api/internal/global/logger"
)

var log *slog.Logger

// Version 构建时通过 -ldflags 注入
var Version = "dev"

type ModulePing struct{}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init(*content.Resolver) {
	log = logger.New("Ping")
}
