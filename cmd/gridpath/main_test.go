package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// TestRun_ChainOrder prints the predecessor chain by default.
func TestRun_ChainOrder(t *testing.T) {
	code, out, _ := runCLI("-c", "3", "-r", "1", "-s", "0", "-q", "0", "-e", "2", "-t", "0", "-o", "0", "--log-level", "error")
	assert.Equal(t, 0, code)
	assert.Equal(t, "The way found!!!\n1 0\n0 0\n", out)
}

// TestRun_ForwardOrder prints start to goal.
func TestRun_ForwardOrder(t *testing.T) {
	code, out, _ := runCLI("--cols", "3", "--rows", "1", "--start_x", "0", "--start_y", "0",
		"--end_x", "2", "--end_y", "0", "--obstacle_ratio", "0", "--order", "forward", "--log-level", "error")
	assert.Equal(t, 0, code)
	assert.Equal(t, "The way found!!!\n0 0\n1 0\n2 0\n", out)
}

// TestRun_StartEqualsEnd prints the single cell in both orders.
func TestRun_StartEqualsEnd(t *testing.T) {
	for _, order := range []string{"chain", "forward"} {
		code, out, _ := runCLI("-c", "3", "-r", "3", "-s", "1", "-q", "2", "-e", "1", "-t", "2", "-o", "0",
			"--order", order, "--log-level", "error")
		assert.Equal(t, 0, code, order)
		assert.Equal(t, "The way found!!!\n1 2\n", out, order)
	}
}

// TestRun_OpenGrid prints eight chain cells for the 5×5 corner route.
func TestRun_OpenGrid(t *testing.T) {
	code, out, _ := runCLI("-c", "5", "-r", "5", "-s", "0", "-q", "0", "-e", "4", "-t", "4", "-o", "0", "--log-level", "error")
	assert.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, "The way found!!!", lines[0])
	assert.Equal(t, "4 3", lines[1])
	assert.Equal(t, "0 0", lines[8])
}

// TestRun_NoRoute prints the hint when a wall separates the endpoints.
func TestRun_NoRoute(t *testing.T) {
	code, out, _ := runCLI("-c", "3", "-r", "3", "-s", "0", "-q", "1", "-e", "2", "-t", "1",
		"-l", filepath.Join("testdata", "wall.json"), "--log-level", "error")
	assert.Equal(t, 0, code)
	assert.Equal(t, "There is no legal way...You can decrease obstacle ration (default 20)\n", out)
}

// TestRun_Errors exits 1 and writes nothing to stdout.
func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"MissingRequired", []string{"-c", "3", "-r", "3"}},
		{"BadFlag", []string{"--diagonal"}},
		{"BadOrder", []string{"-c", "3", "-r", "1", "-s", "0", "-q", "0", "-e", "2", "-t", "0", "--order", "up"}},
		{"OutOfRange", []string{"-c", "3", "-r", "1", "-s", "0", "-q", "0", "-e", "3", "-t", "0"}},
		{"MissingList", []string{"-c", "3", "-r", "1", "-s", "0", "-q", "0", "-e", "2", "-t", "0", "-l", "nope.json"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(tc.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.NotEmpty(t, errOut)
		})
	}
}

// TestRun_Help exits 0.
func TestRun_Help(t *testing.T) {
	code, _, errOut := runCLI("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "obstacle_ratio")
}
