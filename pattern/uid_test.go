package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/pattern"
)

func TestUIDValid(t *testing.T) {
	t.Parallel()

	uid := pattern.UID()

	valid := []string{"1000", "uid=0", "root", "deploy-bot-7"}

	for _, v := range valid {
		assert.True(t, uid.Validate(v), "expected %q to be a valid uid", v)
	}
}

func TestUIDInvalid(t *testing.T) {
	t.Parallel()

	uid := pattern.UID()

	invalid := []string{"", "-1000", "123abc!", "uid="}

	for _, v := range invalid {
		assert.False(t, uid.Validate(v), "expected %q to be an invalid uid", v)
	}
}

func TestUIDHasNoExtractor(t *testing.T) {
	t.Parallel()

	uid := pattern.UID()

	assert.Nil(t, uid.Extract)
}
