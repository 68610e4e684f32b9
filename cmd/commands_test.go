package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capsection/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// useConfig points the persistent --config flag at a temporary file for the
// duration of the test.
func useConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))

	original := configPath
	configPath = p
	t.Cleanup(func() { configPath = original })
	return p
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "configmap", "kube-context", "debug"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "1.4.0"

	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)
	assert.Equal(t, "capsection version 1.4.0\n", buf.String())
}

func TestRender_Section(t *testing.T) {
	useConfig(t, "section:\n  companyName: ACME\n")
	cmd, out := testCommand()

	require.NoError(t, runRender(cmd, &renderOptions{year: 2031}))
	html := out.String()
	assert.True(t, strings.HasPrefix(html, "<section"))
	assert.Contains(t, html, "DOC.ACME.CAP.2031")
	assert.Contains(t, html, "SYS.VER.2031.3")
}

func TestRender_PageToFile(t *testing.T) {
	useConfig(t, "page:\n  title: Capabilities\n")
	cmd, out := testCommand()
	target := filepath.Join(t.TempDir(), "index.html")

	require.NoError(t, runRender(cmd, &renderOptions{page: true, out: target, year: 2030}))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!doctype html>"))
	assert.Contains(t, string(data), "<title>Capabilities</title>")
	assert.Contains(t, string(data), "REF: CQS-CAP-2030")
}

func TestRender_Copy(t *testing.T) {
	useConfig(t, "section:\n  capabilities: []\n")
	cmd, out := testCommand()

	var copied string
	opts := &renderOptions{copy: true, year: 2031, writer: func(s string) error {
		copied = s
		return nil
	}}
	require.NoError(t, runRender(cmd, opts))
	assert.Equal(t, out.String(), copied)
	assert.NotContains(t, copied, `data-role="card"`)

	opts.writer = func(string) error { return errors.New("no clipboard") }
	err := runRender(cmd, opts)
	assert.ErrorContains(t, err, "failed to copy to clipboard")
}

func TestRender_BadConfig(t *testing.T) {
	useConfig(t, "section: [")
	cmd, _ := testCommand()
	assert.Error(t, runRender(cmd, &renderOptions{}))
}

func TestPreview_Static(t *testing.T) {
	useConfig(t, "section:\n  companyName: ACME\n")
	cmd, out := testCommand()

	require.NoError(t, runPreview(cmd, &previewOptions{width: 80}))
	assert.Contains(t, out.String(), "ID: CAP-01")
	assert.Contains(t, out.String(), "CAPABILITIES.INDEX")
	assert.Contains(t, out.String(), "DOC.ACME.CAP.")
}

func TestConfigShow(t *testing.T) {
	useConfig(t, "section:\n  companyName: ACME\nserver:\n  port: 9999\n")

	cmd := newConfigShowCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	require.NoError(t, cmd.RunE(cmd, nil))

	var shown config.CapsectionConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &shown))
	assert.Equal(t, "ACME", shown.Section.CompanyName)
	assert.Equal(t, 9999, shown.Server.Port)
	assert.Len(t, shown.Section.Capabilities, 3)
}

func TestConfigCommandTree(t *testing.T) {
	cmd := newConfigCmd()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["show"])
	assert.True(t, names["path"])
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd := newConfigPathCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Equal(t, filepath.Join(home, ".config", "capsection", "config.yaml")+"\n", buf.String())
}

func TestServeFlags(t *testing.T) {
	for _, name := range []string{"host", "port", "watch"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(name), name)
	}
}
