package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const controllerConfig = `"controller_mappings"
{
	"actions" { "ui" { "title" "UI" } }
	"group"
	{
		"id" "1"
		"inputs"
		{
			"button_b" { "activators" { "Full_Press" { "bindings" { "binding" "game_action ui ui_back, Back" } } } }
		}
	}
	"preset"
	{
		"name" "ui"
		"group_source_bindings" { "1" "switch active" }
	}
}
`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunController(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	in := writeInput(t, dir, "pad.vdf", controllerConfig)

	var stderr bytes.Buffer
	code := run([]string{"controller", "-out", out, "-env", writeInput(t, dir, "x.env", ""), in}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(out, "pad", "controller", "ui.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ui_back=B\n", string(data))
	assert.Contains(t, stderr.String(), "1 presets written")
}

func TestRunControllerSameBaseName(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0o755))

	first := writeInput(t, dir, filepath.Join("a", "pad.vdf"), controllerConfig)
	second := writeInput(t, dir, filepath.Join("b", "pad.vdf"), controllerConfig)

	var stderr bytes.Buffer
	code := run([]string{"controller", "-out", out, "-env", writeInput(t, dir, "x.env", ""), first, second}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.FileExists(t, filepath.Join(out, "pad", "controller", "ui.txt"))
	assert.FileExists(t, filepath.Join(out, "pad-2", "controller", "ui.txt"))
	assert.Contains(t, stderr.String(), `output name "pad" already used, writing to "pad-2"`)
}

func TestOutputNames(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{"distinct", []string{"a/x.vdf", "a/y.vdf"}, []string{"x", "y"}},
		{"same base in other dirs", []string{"a/pad.vdf", "b/pad.vdf", "c/pad.bin"}, []string{"pad", "pad-2", "pad-3"}},
		{"case only", []string{"a/Pad.vdf", "b/pad.vdf"}, []string{"Pad", "pad-2"}},
		{"suffix already taken", []string{"pad.vdf", "pad-2.vdf", "x/pad.vdf"}, []string{"pad", "pad-2", "pad-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputNames(tt.paths))
		})
	}
}

func TestRunStatsTextInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	in := writeInput(t, dir, "schema.txt", `"480"
{
	"stats"
	{
		"1" { "name" "kills" "type" "1" "min" "10" "max" "0" }
		"2" { "type" "4" "bits" { "0" { "name" "ACH_A" "display" { "icon" "a.jpg" "name" { "german" "Sieg" "english" "Win" } } } } }
	}
}`)

	var stderr bytes.Buffer
	code := run([]string{"stats", "-format", "text", "-out", out, "-env", writeInput(t, dir, "x.env", ""), in}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(out, "schema", "stats.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: kills")
	assert.Contains(t, string(data), "name: ACH_A")
	assert.Contains(t, string(data), "bounds-swapped")
	assert.Contains(t, string(data), "languages:")
	assert.Contains(t, string(data), "- english")
	assert.Contains(t, string(data), "- german")
	assert.Contains(t, stderr.String(), "1 stats, 1 achievements, 1 icons")
}

func TestRunDumpBinary(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	// "root" { "a" "x" }
	doc := []byte{0x00, 'r', 'o', 'o', 't', 0x00, 0x01, 'a', 0x00, 'x', 0x00, 0x08, 0x08}
	in := filepath.Join(dir, "doc.bin")
	require.NoError(t, os.WriteFile(in, doc, 0o644))

	var stderr bytes.Buffer
	code := run([]string{"dump", "-out", out, "-env", writeInput(t, dir, "x.env", ""), in}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(out, "doc.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"root":{"a":"x"}}`, string(data))
	assert.NotContains(t, stderr.String(), "settings:")
}

func TestRunDebugPrintsSettings(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	in := writeInput(t, dir, "doc.vdf", `"a" { "b" "c" }`)

	var stderr bytes.Buffer
	code := run([]string{"dump", "-format", "text", "-debug", "-jobs", "3", "-out", out, "-env", writeInput(t, dir, "x.env", ""), in}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stderr.String(), "settings:")
	assert.Contains(t, stderr.String(), "out_dir: "+out)
	assert.Contains(t, stderr.String(), "jobs: 3")
	assert.Contains(t, stderr.String(), "debug: true")
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	env := writeInput(t, dir, "x.env", "")

	var stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stderr))
	assert.Equal(t, 2, run([]string{"bogus"}, &stderr))
	assert.Equal(t, 2, run([]string{"stat"}, &stderr))
	assert.Contains(t, stderr.String(), `did you mean "stats"?`)
	assert.Equal(t, 2, run([]string{"dump", "-env", env}, &stderr))
	assert.Equal(t, 2, run([]string{"dump", "-env", env, "-format", "xml", "a"}, &stderr))

	bad := writeInput(t, dir, "bad.vdf", `"a" {`)
	good := writeInput(t, dir, "good.vdf", `"a" { "b" "c" }`)

	stderr.Reset()
	code := run([]string{"dump", "-format", "text", "-out", filepath.Join(dir, "out"), "-env", env, bad, good}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "1 of 2 files failed")
	assert.Contains(t, stderr.String(), "bad.vdf: [file-failed]")
	assert.Contains(t, stderr.String(), "2 files: 1 errors, 0 warnings, 0 infos")
	assert.FileExists(t, filepath.Join(dir, "out", "good.json"))
}

func TestRunAppInfo(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	env := writeInput(t, dir, "x.env", "")

	in := writeInput(t, dir, "480.vdf", `"appinfo"
{
	"common" { "name" "Spacewar" }
	"config"
	{
		"steamcontrollerconfigdetails"
		{
			"77" { "controller_type" "controller_xbox360" "enabled_branches" "default" }
		}
	}
	"depots" { "481" { "dlcappid" "500" } }
	"ufs" { "savefiles" { "0" { "root" "gameinstall" "path" "saves" } } }
}`)
	details := writeInput(t, dir, "details.json", `{"480":{"success":true,"data":{"dlc":[501],"demos":[{"appid":490}]}}}`)

	var stderr bytes.Buffer
	code := run([]string{
		"appinfo", "-format", "text", "-out", out, "-env", env,
		"-details", details, "-appid", "480", in,
	}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(out, "480", "appinfo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Spacewar")
	assert.Contains(t, string(data), "Unknown DLC (depot - appid 500)")
	assert.Contains(t, string(data), "Unknown demo (appid 490)")
	assert.Contains(t, string(data), "root: gameinstall")
	assert.Contains(t, stderr.String(), "1 save files")
	assert.Contains(t, stderr.String(), "controller config 77 (controller_xbox360) selected")

	assert.Equal(t, 2, run([]string{"appinfo", "-env", env, "-details", details, in}, &stderr))
}
