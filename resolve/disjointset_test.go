package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/resolve"
)

func TestDisjointSetStartsDisjoint(t *testing.T) {
	t.Parallel()

	ds := resolve.NewDisjointSet(5)

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i))
	}
}

func TestDisjointSetUnionConnects(t *testing.T) {
	t.Parallel()

	ds := resolve.NewDisjointSet(5)

	ds.Union(0, 1)
	ds.Union(1, 2)

	assert.Equal(t, ds.Find(0), ds.Find(2))
	assert.NotEqual(t, ds.Find(0), ds.Find(3))
}

func TestDisjointSetUnionIdempotent(t *testing.T) {
	t.Parallel()

	ds := resolve.NewDisjointSet(3)

	ds.Union(0, 1)
	ds.Union(0, 1)
	ds.Union(1, 0)

	assert.Equal(t, ds.Find(0), ds.Find(1))
}
