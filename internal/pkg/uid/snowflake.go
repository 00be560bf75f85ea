package uid

import (
	"hash/fnv"
	"os"

	"github.com/bwmarrin/snowflake"
)

// NumberID generates unique numeric identifiers.
type NumberID interface {
	Generate() int64
}

// Snowflake generates sortable 63-bit identifiers.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a Snowflake generator. The node number is derived from
// the hostname so distinct instances pick distinct nodes without coordination.
func NewSnowflake() (*Snowflake, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	h := fnv.New32a()
	h.Write([]byte(host))

	node, err := snowflake.NewNode(int64(h.Sum32() % 1024))
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new numeric identifier.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
