package minimax

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	// Maximum search depth, -1 searches until the game ends
	Depth int `json:"depth"`
}

const DefaultDepthLimit int = -1

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

func DefaultLimits() *Limits {
	return &Limits{
		Depth: DefaultDepthLimit,
	}
}

// Set the maximum depth of the search, any negative value means unbounded.
// Depth 0 makes every search stop at the root.
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = max(depth, DefaultDepthLimit)
	return l
}

// Whether the search runs until terminal positions
func (l Limits) Infinite() bool {
	return l.Depth == DefaultDepthLimit
}
