package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out unique, roughly time-ordered identifiers.
type Generator interface {
	GenerateID() int64
	// Reference returns prefix followed by a fresh decimal id, e.g. "BK1743512345678901234".
	Reference(prefix string) string
}

type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) next() snowflake.ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.node.Generate()
}

func (g *SnowflakeGenerator) GenerateID() int64 {
	return g.next().Int64()
}

func (g *SnowflakeGenerator) Reference(prefix string) string {
	return prefix + g.next().String()
}
