package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logident/logident/classify"
)

func TestClassifyIdempotent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, classify.Classify("user@example.com"), classify.Classify("user@example.com"))
	assert.Nil(t, classify.Classify(""))
}

func TestClassifyIPv6(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"ip"}, classify.Classify("2001:db8::1"))
}

func TestClassifyEmailExcludesDNSName(t *testing.T) {
	t.Parallel()

	cats := classify.Classify("user@example.com")

	assert.Contains(t, cats, "email")
	assert.NotContains(t, cats, "dnsname")
}

func TestExtractAllSoundness(t *testing.T) {
	t.Parallel()

	line := "Dec 10 06:55:46 LabSZ sshd[24200]: Invalid user webmaster from 173.234.31.186"

	extractions := classify.ExtractAll(line, nil)

	assert.NotEmpty(t, extractions)

	for _, e := range extractions {
		assert.Contains(t, classify.Classify(e.Value), e.Category,
			"extracted %q as %q but classify disagrees", e.Value, e.Category)
	}
}

func TestExtractAllRespectsExclude(t *testing.T) {
	t.Parallel()

	line := "contact user@example.com about 10.0.0.1"

	full := classify.ExtractAll(line, nil)
	excluded := classify.ExtractAll(line, map[string]bool{"email": true})

	assert.Greater(t, len(full), len(excluded))

	for _, e := range excluded {
		assert.NotEqual(t, "email", e.Category)
	}
}
