package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// IDGenerator 评价和投递记录的主键都从这里拿
type IDGenerator interface {
	Generate() int64
}

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

// +----------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp | 10 Bit NodeID | 12 Bit Sequence ID |
// +----------------------------------------------------------------------+

type NodeGenerator struct {
	node *snowflake.Node
}

// NewNodeGenerator 每个实例要配置不同的 nodeId，从 0 开始，最多到 1023
func NewNodeGenerator(nodeId int64) (*NodeGenerator, error) {
	if nodeId < 0 || nodeId > maxNode {
		return nil, fmt.Errorf("%w, nodeId: %d", ErrExceedNode, nodeId)
	}
	n, err := snowflake.NewNode(nodeId)
	if err != nil {
		return nil, err
	}
	return &NodeGenerator{node: n}, nil
}

func (g *NodeGenerator) Generate() int64 {
	return g.node.Generate().Int64()
}

// NodeOf 用于排查问题，看看 id 是哪个实例生成的
func NodeOf(id int64) int64 {
	return snowflake.ID(id).Node()
}
