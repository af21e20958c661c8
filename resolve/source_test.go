package resolve_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logident/logident/finding"
	"github.com/logident/logident/resolve"
)

func TestSliceSourceForEach(t *testing.T) {
	t.Parallel()

	src := resolve.SliceSource{
		{Line: 1, Type: "ip", Value: "10.0.0.1"},
		{Line: 2, Type: "username", Value: "root"},
	}

	var visited []finding.Finding

	err := src.ForEach(func(f finding.Finding) error {
		visited = append(visited, f)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []finding.Finding(src), visited)
}

func TestJSONFileSourceReplaysFullContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "findings.json")

	data := `[
		{"line":1,"timestamp":"","type":"ip","value":"10.0.0.1"},
		{"line":2,"timestamp":"","type":"username","value":"root"}
	]`

	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	src := resolve.JSONFileSource{Path: path}

	for pass := 0; pass < 2; pass++ {
		var visited []finding.Finding

		err := src.ForEach(func(f finding.Finding) error {
			visited = append(visited, f)

			return nil
		})
		require.NoError(t, err)
		assert.Len(t, visited, 2)
		assert.Equal(t, "10.0.0.1", visited[0].Value)
		assert.Equal(t, "root", visited[1].Value)
	}
}
