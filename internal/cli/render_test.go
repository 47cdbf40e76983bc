package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edouardmenayde/rush-hour/internal/config"
	"github.com/edouardmenayde/rush-hour/internal/model"
	"github.com/edouardmenayde/rush-hour/internal/puzzle"
)

const sampleInput = "# sample\n0 1 horizontal 3\n1 0 vertical 3\n"

const sampleBoard = "|------|\n" +
	"| x    |\n" +
	"|xxx   |\n" +
	"| x    |\n" +
	"|      |\n" +
	"|      |\n" +
	"|      |\n" +
	"|------| "

// executeCommand runs the root command with args and returns what it wrote
// to stdout and stderr.
//
// The working directory is a fresh temp dir so that no .rush-hour.yaml or
// .env file from the repository leaks into the test.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	for _, k := range []string{config.EnvPuzzle, config.EnvPuzzleDir, config.EnvAddr} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writePuzzle writes content to a file in a temp dir and returns its path.
func writePuzzle(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// requireExitCode asserts that err is a CLIError carrying code.
func requireExitCode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected CLIError, got %T: %v", err, err)
	assert.Equal(t, code, cliErr.Code)
}

// --- render tests ---

func TestRender_File(t *testing.T) {
	path := writePuzzle(t, "sample.txt", sampleInput)

	out, _, err := executeCommand(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, sampleBoard+"\n", out)
}

func TestRender_Echo(t *testing.T) {
	path := writePuzzle(t, "sample.txt", sampleInput)

	out, _, err := executeCommand(t, "", "render", "--echo", path)
	require.NoError(t, err)
	assert.Equal(t, sampleInput+"\n"+sampleBoard+"\n", out)
}

func TestRender_Trim(t *testing.T) {
	path := writePuzzle(t, "sample.txt", sampleInput)

	out, _, err := executeCommand(t, "", "render", "--trim", path)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(sampleBoard, " ")+"\n", out)
}

func TestRender_Stdin(t *testing.T) {
	out, _, err := executeCommand(t, sampleInput, "render", "-")
	require.NoError(t, err)
	assert.Equal(t, sampleBoard+"\n", out)
}

func TestRender_StdinJSONC(t *testing.T) {
	doc := `{"cars": [
		{"x": 0, "y": 1, "orientation": "horizontal", "length": 3},
		{"x": 1, "y": 0, "orientation": "vertical", "length": 3}, // blocker
	]}`

	out, _, err := executeCommand(t, doc, "render", "--format", "jsonc", "-")
	require.NoError(t, err)
	assert.Equal(t, sampleBoard+"\n", out)
}

func TestRender_JSONCByExtension(t *testing.T) {
	path := writePuzzle(t, "sample.jsonc", `{"cars": [{"x": 0, "y": 0, "orientation": "vertical", "length": 6}]}`)

	out, _, err := executeCommand(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "|x     |"))
}

func TestRender_JSON(t *testing.T) {
	path := writePuzzle(t, "sample.txt", sampleInput)

	out, _, err := executeCommand(t, "", "render", "--json", path)
	require.NoError(t, err)

	var result struct {
		File  string      `json:"file"`
		Cars  []model.Car `json:"cars"`
		Board []string    `json:"board"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, path, result.File)
	assert.Equal(t, []model.Car{
		{X: 0, Y: 1, Length: 3, Orientation: model.Horizontal},
		{X: 1, Y: 0, Length: 3, Orientation: model.Vertical},
	}, result.Cars)
	assert.Equal(t, []string{" x    ", "xxx   ", " x    ", "      ", "      ", "      "}, result.Board)
}

func TestRender_Malformed(t *testing.T) {
	path := writePuzzle(t, "bad.txt", "# c\n0 0 horizontal 2\n1 2 horizontal\n")

	out, _, err := executeCommand(t, "", "render", path)
	requireExitCode(t, err, model.ExitMalformedPuzzle)
	assert.Empty(t, out, "no partial board is printed")

	var lineErr *puzzle.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, "1 2 horizontal", lineErr.Text)
	assert.Contains(t, err.Error(), `"1 2 horizontal"`)
}

func TestRender_BlankLine(t *testing.T) {
	path := writePuzzle(t, "blank.txt", "0 0 horizontal 2\n\n1 1 vertical 2\n")

	_, _, err := executeCommand(t, "", "render", path)
	requireExitCode(t, err, model.ExitMalformedPuzzle)

	out, _, err := executeCommand(t, "", "render", "--skip-blank", path)
	require.NoError(t, err)
	assert.Contains(t, out, "|xx    |")
}

func TestRender_Strict(t *testing.T) {
	path := writePuzzle(t, "typo.txt", "0 0 verticle 2\n")

	out, _, err := executeCommand(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "|xx    |", "typo falls back to horizontal")

	_, _, err = executeCommand(t, "", "render", "--strict", path)
	requireExitCode(t, err, model.ExitMalformedPuzzle)
	assert.True(t, errors.Is(err, puzzle.ErrUnknownOrientation))
}

func TestRender_NotFound(t *testing.T) {
	_, _, err := executeCommand(t, "", "render", filepath.Join(t.TempDir(), "missing.txt"))
	requireExitCode(t, err, model.ExitPuzzleNotFound)
}

func TestRender_InvalidFormat(t *testing.T) {
	path := writePuzzle(t, "sample.txt", sampleInput)

	_, _, err := executeCommand(t, "", "render", "--format", "xml", path)
	requireExitCode(t, err, model.ExitGeneralError)
}

func TestRender_TooManyArgs(t *testing.T) {
	_, _, err := executeCommand(t, "", "render", "a.txt", "b.txt")
	assert.Error(t, err)
}

// --- configuration tests ---

func TestRender_DefaultPuzzleFromConfig(t *testing.T) {
	puzzlePath := writePuzzle(t, "sample.txt", sampleInput)
	configFile := writePuzzle(t, "config.yaml", "puzzle: "+puzzlePath+"\necho: true\nrender:\n  trim_border_space: true\n")

	out, _, err := executeCommand(t, "", "render", "--config", configFile)
	require.NoError(t, err)
	assert.Equal(t, sampleInput+"\n"+strings.TrimSuffix(sampleBoard, " ")+"\n", out)
}

func TestRender_MissingConfig(t *testing.T) {
	_, _, err := executeCommand(t, "", "render", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	requireExitCode(t, err, model.ExitConfigError)
}

func TestRender_VerboseLogsToStderr(t *testing.T) {
	path := writePuzzle(t, "sample.txt", sampleInput)

	out, errOut, err := executeCommand(t, "", "render", "-v", path)
	require.NoError(t, err)
	assert.Equal(t, sampleBoard+"\n", out)
	assert.Contains(t, errOut, "Parsed 2 cars")
}

// TestReportError verifies the exit code mapping of Execute.
func TestReportError(t *testing.T) {
	assert.Equal(t, model.ExitPuzzleNotFound,
		reportError(model.NewCLIError(model.ExitPuzzleNotFound, "puzzle file not found")))
	assert.Equal(t, model.ExitGeneralError, reportError(errors.New("boom")))
}
