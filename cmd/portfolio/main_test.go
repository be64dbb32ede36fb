package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoutes(t *testing.T) {
	out := formatRoutes(false)
	for _, name := range []string{"Home", "About", "Projects", "Contact"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "Experience")
	assert.Less(t, strings.Index(out, "About"), strings.Index(out, "Contact"))

	assert.Contains(t, formatRoutes(true), "Experience")
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "site")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"build", "--output", out, "--static-dir", filepath.Join(dir, "static")})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, stdout.String(), "Exported 4 pages")
	data, err := os.ReadFile(filepath.Join(out, "projects", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "My Projects")
}
