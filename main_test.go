package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"csscolor/color"
	"csscolor/css"
)

type result struct {
	stdout, stderr string
	err            error
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out, errOut bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestRunDebugOutput(t *testing.T) {
	res := runCLI(t, "", "red", "#00ff0080", "rgb(300,-10,0)", "hsl(120 100% 25% / 0.5)")
	require.NoError(t, res.err)
	require.Equal(t, "[255, 0, 0, 255]\n[0, 255, 0, 128]\n[255, 0, 0, 255]\n[0, 128, 0, 128]\n", res.stdout)
	require.Empty(t, res.stderr)
}

func TestRunContinuesAfterError(t *testing.T) {
	res := runCLI(t, "", "red", "bogus", "blue")
	require.Error(t, res.err)

	var failed *invalidColorsError
	require.ErrorAs(t, res.err, &failed)
	require.Equal(t, 1, failed.failed)
	require.Equal(t, 3, failed.total)

	require.Equal(t, "[255, 0, 0, 255]\n[0, 0, 255, 255]\n", res.stdout)
	require.Equal(t, "Error: invalid color \"bogus\": unknown color name \"bogus\" at offset 0\n", res.stderr)
}

func TestRunFormats(t *testing.T) {
	tests := []struct {
		format string
		input  string
		want   string
	}{
		{"debug", "#abc", "[170, 187, 204, 255]"},
		{"hex", "rgb(255 128 0)", "#ff8000"},
		{"hex", "rgba(0, 0, 0, 0.5)", "#00000080"},
		{"css", "#ff000080", "rgb(255 0 0 / 0.502)"},
		{"CSS", "lime", "rgb(0 255 0)"},
	}
	for _, tt := range tests {
		res := runCLI(t, "", "-f", tt.format, tt.input)
		require.NoError(t, res.err, "format %s", tt.format)
		require.Equal(t, tt.want+"\n", res.stdout, "format %s of %q", tt.format, tt.input)
	}
}

func TestRunJSON(t *testing.T) {
	res := runCLI(t, "", "--format", "json", "#f00", "#123456")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)

	var first, second jsonColor
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, jsonColor{Input: "#f00", RGBA8: [4]uint8{255, 0, 0, 255}, Hex: "#ff0000", Name: "red"}, first)
	require.Equal(t, jsonColor{Input: "#123456", RGBA8: [4]uint8{0x12, 0x34, 0x56, 255}, Hex: "#123456"}, second)
	require.NotContains(t, lines[1], "name")
}

func TestRunReadsStdin(t *testing.T) {
	res := runCLI(t, "red\n\n  #fff  \r\nnope\n", "-f", "hex")
	require.Error(t, res.err)
	require.Equal(t, "#ff0000\n#ffffff\n", res.stdout)
	require.Contains(t, res.stderr, `invalid color "nope"`)
}

func TestRunParserOptions(t *testing.T) {
	res := runCLI(t, "", "--strict", "rgb(300, 0, 0)", "rgb(255, 0, 0)")
	require.Error(t, res.err)
	require.Contains(t, res.stderr, "outside [0, 255]")
	require.Equal(t, "[255, 0, 0, 255]\n", res.stdout)

	res = runCLI(t, "", "--bare-hex", "ff0000", "abc")
	require.NoError(t, res.err)
	require.Equal(t, "[255, 0, 0, 255]\n[170, 187, 204, 255]\n", res.stdout)

	res = runCLI(t, "", "--current-color", "#010203", "currentColor")
	require.NoError(t, res.err)
	require.Equal(t, "[1, 2, 3, 255]\n", res.stdout)

	res = runCLI(t, "", "currentcolor")
	require.Error(t, res.err)
	require.Contains(t, res.stderr, "currentcolor")
}

func TestRunSettingsErrors(t *testing.T) {
	res := runCLI(t, "", "-f", "xml", "red")
	require.ErrorContains(t, res.err, `unknown format "xml"`)
	require.Empty(t, res.stdout)

	res = runCLI(t, "", "--current-color", "nope", "red")
	require.ErrorContains(t, res.err, "current color")

	res = runCLI(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "red")
	require.ErrorContains(t, res.err, "missing.yaml")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: css\nbare_hex: true\n"), 0o644))

	res := runCLI(t, "", "--config", path, "red", "00ff00")
	require.NoError(t, res.err)
	require.Equal(t, "rgb(255 0 0)\nrgb(0 255 0)\n", res.stdout)

	res = runCLI(t, "", "--config", path, "-f", "hex", "red")
	require.NoError(t, res.err)
	require.Equal(t, "#ff0000\n", res.stdout)
}

func TestRunSwatchAndTrace(t *testing.T) {
	dir := t.TempDir()
	swatchPath := filepath.Join(dir, "sheet.png")
	tracePath := filepath.Join(dir, "trace.json")

	res := runCLI(t, "", "--swatch", swatchPath, "--trace", tracePath, "red", "bogus", "hsl(200 50% 50%)")
	require.Error(t, res.err)

	info, err := os.Stat(swatchPath)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	data, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	var doc struct {
		TraceEvents []struct {
			Name  string `json:"name"`
			Phase string `json:"ph"`
		} `json:"traceEvents"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.TraceEvents, 7)
	require.Equal(t, "bogus", doc.TraceEvents[3].Name)
}

func TestDecodeClosesTraceOnFormatError(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "trace.json")
	s := &settings{format: "bogus", trace: tracePath, parser: css.NewParser(css.Options{})}

	var out, errOut bytes.Buffer
	err := decodeColors(&out, &errOut, s, []string{"red", "blue"})
	require.ErrorContains(t, err, `unknown format "bogus"`)
	require.Empty(t, out.String())

	data, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	var doc struct {
		TraceEvents []json.RawMessage `json:"traceEvents"`
	}
	require.NoError(t, json.Unmarshal(data, &doc), string(data))
	require.Len(t, doc.TraceEvents, 3)
}

func TestRunReadsLongStdinLine(t *testing.T) {
	long := strings.Repeat("x", 100*1024)
	res := runCLI(t, "red\n"+long+"\nblue\n")

	var failed *invalidColorsError
	require.ErrorAs(t, res.err, &failed)
	require.Equal(t, 1, failed.failed)
	require.Equal(t, 3, failed.total)
	require.Equal(t, "[255, 0, 0, 255]\n[0, 0, 255, 255]\n", res.stdout)
	require.Equal(t, 1, strings.Count(res.stderr, "Error:"))
	require.Contains(t, res.stderr, "unknown color name")
}

func TestRunPreviewAndReference(t *testing.T) {
	res := runCLI(t, "", "--preview", "--reference", "red", "#0000ff")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], " [255, 0, 0, 255]"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], " [0, 0, 255, 255]"), lines[1])
}

func TestNamesCommand(t *testing.T) {
	res := runCLI(t, "", "names")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, len(color.Names()))
	require.Contains(t, lines, fmt.Sprintf("%-22s %s", "rebeccapurple", "#663399"))
	require.Contains(t, lines, fmt.Sprintf("%-22s %s", "transparent", "#00000000"))
	require.True(t, strings.HasPrefix(lines[0], "aliceblue "), lines[0])

	res = runCLI(t, "", "names", "extra")
	require.Error(t, res.err)
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "--version")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "csscolor version "+Version)
}

func TestCrossCheck(t *testing.T) {
	red := color.FromRGBA8(255, 0, 0, 255)
	require.Empty(t, crossCheck("red", red, nil))
	require.Contains(t, crossCheck("#ff0000", color.FromRGBA8(0, 0, 255, 255), nil), "csscolorparser gives #ff0000")
	require.Contains(t, crossCheck("bogus", red, nil), "csscolorparser rejects it")
	require.Empty(t, crossCheck("bogus", color.Color{}, fmt.Errorf("rejected")))
}
