package finding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/finding"
)

func TestValueKeyString(t *testing.T) {
	t.Parallel()

	k := finding.ValueKey{Category: "ip", Value: "10.0.0.1"}

	assert.Equal(t, "ip:10.0.0.1", k.String())
}

func TestIsNoise(t *testing.T) {
	t.Parallel()

	assert.True(t, finding.IsNoise(""))
	assert.True(t, finding.IsNoise("ab"))
	assert.True(t, finding.IsNoise("null"))
	assert.True(t, finding.IsNoise("true"))
	assert.True(t, finding.IsNoise("false"))
	assert.False(t, finding.IsNoise("webmaster"))
	assert.False(t, finding.IsNoise("abc"))
}

func TestLineIndexBuildsDenseBijection(t *testing.T) {
	t.Parallel()

	li := finding.NewLineIndex([]int64{5, 1, 3, 1, 5})

	assert.Equal(t, 3, li.Len())

	idx, ok := li.Index(1)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = li.Index(3)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = li.Index(5)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	assert.Equal(t, int64(1), li.Line(0))
	assert.Equal(t, int64(3), li.Line(1))
	assert.Equal(t, int64(5), li.Line(2))

	_, ok = li.Index(42)
	assert.False(t, ok)
}
