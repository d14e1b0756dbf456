package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/dbfetch/internal/core/ports"
)

const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			level := slog.LevelInfo
			if os.Getenv("DBFETCH_DEBUG") != "" {
				level = slog.LevelDebug
			}
			return NewAt(level), nil
		},
	})
}
