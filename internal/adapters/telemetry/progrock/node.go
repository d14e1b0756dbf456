package progrock

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/dbfetch/internal/adapters/telemetry"
	"go.trai.ch/dbfetch/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry adapter node.
	NodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			if os.Getenv("DBFETCH_PROGRESS") == "off" {
				return telemetry.NewNoop(), nil
			}
			return New(), nil
		},
	})
}
