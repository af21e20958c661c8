package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestRealNameValid(t *testing.T) {
	t.Parallel()

	name := pattern.RealName()

	valid := []string{"John Smith", "Mary-Jane Watson", "Anne O'Brien", "John Q Public"}

	for _, v := range valid {
		assert.True(t, name.Validate(v), "expected %q to be a valid realname", v)
	}
}

func TestRealNameInvalid(t *testing.T) {
	t.Parallel()

	name := pattern.RealName()

	invalid := []string{"", "john smith", "Smith", "JOHN SMITH"}

	for _, v := range invalid {
		assert.False(t, name.Validate(v), "expected %q to be an invalid realname", v)
	}
}

func TestRealNameHasNoExtractor(t *testing.T) {
	t.Parallel()

	name := pattern.RealName()

	assert.Nil(t, name.Extract)
}
