package extractpipe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logident/logident/extractpipe"
)

func TestRunScenario1Findings(t *testing.T) {
	t.Parallel()

	line := "Dec 10 06:55:46 LabSZ sshd[24200]: Invalid user webmaster from 173.234.31.186\n"

	pipe := extractpipe.New(nil)

	result, err := pipe.Run(context.Background(), extractpipe.ReaderSource{Data: []byte(line)}, extractpipe.Config{})
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.TotalLinesProcessed)

	has := func(typ, value string) bool {
		for _, f := range result.Findings {
			if f.Type == typ && f.Value == value {
				return true
			}
		}

		return false
	}

	assert.True(t, has("username", "webmaster"))
	assert.True(t, has("pid", "24200"))
	assert.True(t, has("ip", "173.234.31.186"))
	assert.True(t, has("time", "Dec 10 06:55:46"))
}

func TestRunAssignsAbsoluteLineNumbers(t *testing.T) {
	t.Parallel()

	data := "user1@example.com\nuser2@example.com\nuser3@example.com\n"

	pipe := extractpipe.New(nil)

	result, err := pipe.Run(context.Background(), extractpipe.ReaderSource{Data: []byte(data)}, extractpipe.Config{ChunkSize: 1})
	require.NoError(t, err)

	assert.EqualValues(t, 3, result.TotalLinesProcessed)

	var lines []int64
	for _, f := range result.Findings {
		if f.Type == "email" {
			lines = append(lines, f.Line)
		}
	}

	assert.Equal(t, []int64{1, 2, 3}, lines)
}

func TestRunRespectsLimit(t *testing.T) {
	t.Parallel()

	data := "line one user@example.com\nline two user@example.com\nline three user@example.com\n"

	pipe := extractpipe.New(nil)

	result, err := pipe.Run(context.Background(), extractpipe.ReaderSource{Data: []byte(data)}, extractpipe.Config{Limit: 2})
	require.NoError(t, err)

	assert.EqualValues(t, 2, result.TotalLinesProcessed)
}

func TestRunRespectsSampleRate(t *testing.T) {
	t.Parallel()

	data := "1 user@example.com\n2 user@example.com\n3 user@example.com\n4 user@example.com\n"

	pipe := extractpipe.New(nil)

	result, err := pipe.Run(context.Background(), extractpipe.ReaderSource{Data: []byte(data)}, extractpipe.Config{SampleRate: 2})
	require.NoError(t, err)

	assert.EqualValues(t, 2, result.TotalLinesProcessed)

	var lines []int64
	for _, f := range result.Findings {
		if f.Type == "email" {
			lines = append(lines, f.Line)
		}
	}

	assert.Equal(t, []int64{2, 4}, lines)
}

func TestRunRespectsExclude(t *testing.T) {
	t.Parallel()

	data := "contact user@example.com from 10.0.0.1\n"

	pipe := extractpipe.New(nil)

	result, err := pipe.Run(context.Background(), extractpipe.ReaderSource{Data: []byte(data)}, extractpipe.Config{
		Exclude: map[string]bool{"email": true},
	})
	require.NoError(t, err)

	for _, f := range result.Findings {
		assert.NotEqual(t, "email", f.Type)
	}
}

func TestRunEmptyInput(t *testing.T) {
	t.Parallel()

	pipe := extractpipe.New(nil)

	result, err := pipe.Run(context.Background(), extractpipe.ReaderSource{Data: []byte{}}, extractpipe.Config{})
	require.NoError(t, err)

	assert.Zero(t, result.TotalLinesProcessed)
	assert.Empty(t, result.Findings)
}
