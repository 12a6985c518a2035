package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/phenolab/hposim/internal/core/ports"
)

const (
	OpenerNodeID   graft.ID = "adapter.fs.opener"
	DigesterNodeID graft.ID = "adapter.fs.digester"
)

func init() {
	// Opener Node (concrete implementation shared by the data loaders)
	graft.Register(graft.Node[*Opener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Opener, error) {
			return NewOpener(), nil
		},
	})

	// Digester Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        DigesterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewDigester(), nil
		},
	})
}
