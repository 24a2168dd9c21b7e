package repository

import (
	"strconv"

	"github.com/google/uuid"
)

var _ IDGenerator = (*sequenceGenerator)(nil)
var _ IDGenerator = uuidGenerator{}

type sequenceGenerator struct {
	next int
}

// NewSequenceGenerator returns a counter that starts after the highest
// numeric id in existing. Ids are never handed out twice, even after deletes.
func NewSequenceGenerator(existing []string) *sequenceGenerator {
	g := &sequenceGenerator{next: 1}

	for _, id := range existing {
		if n, err := strconv.Atoi(id); err == nil && n >= g.next {
			g.next = n + 1
		}
	}

	return g
}

func (g *sequenceGenerator) NextID() string {
	id := strconv.Itoa(g.next)
	g.next++
	return id
}

type uuidGenerator struct{}

func NewUUIDGenerator() uuidGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NextID() string {
	return uuid.NewString()
}

// NewIDGenerator builds the generator for strategy, seeded with the ids
// already present in the collection.
func NewIDGenerator(strategy IDStrategy, existing []string) IDGenerator {
	if strategy == IDStrategyUUID {
		return NewUUIDGenerator()
	}

	return NewSequenceGenerator(existing)
}
