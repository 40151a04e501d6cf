package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

type Generator interface {
	GenerateID() int64
}

// SnowflakeGenerator hands out snowflake ids. Ids from one node increase strictly, so
// they double as submission generations.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator creates a generator for nodeID, which must be unique per
// running instance (0-1023).
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("invalid snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) GenerateID() int64 {
	return g.node.Generate().Int64()
}

// ParseID reads an id back from its decimal form, as it appears in URLs and JSON.
func ParseID(s string) (int64, error) {
	id, err := snowflake.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id.Int64(), nil
}
