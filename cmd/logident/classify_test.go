package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCmdWritesCategoriesToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := newClassifyCmd()
	cmd.SetArgs([]string{"10.0.0.1", "--output", out})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ip")
}

func TestClassifyCmdRequiresExactlyOneArg(t *testing.T) {
	cmd := newClassifyCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
