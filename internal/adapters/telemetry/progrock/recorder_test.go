package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dbfetch/internal/adapters/telemetry/progrock"
	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/dbfetch/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordLifecycle(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "load students")
	require.NotNil(t, vertex)
	assert.Same(t, vertex, ports.VertexFromContext(ctx))

	if _, err := vertex.Stdout().Write([]byte("5 rows\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}
	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "load students")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}
