package ledger

import "time"

// idGenerator hands out millisecond timestamps, bumped past the last id issued so
// that ids stay unique even when several entries are created within the same
// millisecond.
type idGenerator struct {
	now  func() time.Time
	last int64
}

func newIDGenerator(now func() time.Time) *idGenerator {
	return &idGenerator{now: now}
}

// observe records an existing id so later ids are issued after it.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
