package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLayoutCmd_DefaultYAML(t *testing.T) {
	out, err := runCmd(t, "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "active: Dashboard")
	assert.Contains(t, out, "collapsed: false")
	assert.Contains(t, out, "brand: MicroSaaS")
	assert.Contains(t, out, "overlay:")
}

func TestLayoutCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "layout", "--active", "DataSources", "--collapsed", "--format", "json")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	page := body["page"].(map[string]any)
	assert.Equal(t, "Data Sources", page["title"])
	assert.NotContains(t, body, "overlay")
	sidebar := body["sidebar"].(map[string]any)
	assert.Equal(t, "w-16", sidebar["width_class"])
}

func TestLayoutCmd_Errors(t *testing.T) {
	_, err := runCmd(t, "layout", "--active", "Reports")
	assert.ErrorContains(t, err, "unknown navigation identifier")

	_, err = runCmd(t, "layout", "--format", "toml")
	assert.ErrorContains(t, err, "--format")
}

func TestRootCmd_Version(t *testing.T) {
	out, err := runCmd(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "MicroSaaS console")
	assert.Contains(t, out, version)
}
