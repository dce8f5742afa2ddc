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

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDemoNames(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Nested conjunction: ((A ∧ B) ∧ C)")
	assert.Contains(t, out, "[]<>green")
	assert.Contains(t, out, "[]¬(critical1 ∧ critical2)")
	assert.Contains(t, out, "[](¬trying1 ∨ <>critical1)")
	assert.NotContains(t, out, "is_true")
}

func TestDemoCodes(t *testing.T) {
	out, err := execute(t, "demo", "--labels", "code", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "Nested conjunction: ((8 ∧ 1) ∧ 4)")
	assert.Contains(t, out, "Constant: true\n  size=1 depth=1\n  is_true=true")
	assert.Contains(t, out, "Conjunction of constants: (true ∧ true)\n  size=3 depth=2\n  is_true=false")
	assert.Contains(t, out, "ltl_formulas_constructed_total labels=code op=boolean 3")
	assert.Contains(t, out, "ltl_handles_released_total labels=code 11")
	assert.Contains(t, out, "ltl_handles_live labels=code 0")
}

func TestDemoDot(t *testing.T) {
	out, err := execute(t, "demo", "--format", "dot")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "digraph Formula"))
}

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - {id: t, boolean: true}
  - {id: x, atomic: 3}
  - {id: f, eventually: x}
  - {id: g, conjunction: [t, f]}
  - render: g
  - is_true: t
`), 0o644))

	out, err := execute(t, "run", "--labels", "code", path)
	require.NoError(t, err)
	assert.Equal(t, "g: (true ∧ <>3)\nt: true\n", out)
}

func TestRunScriptUseAfterRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - {id: a, atomic: p}
  - render: a
  - release: a
  - render: a
`), 0o644))

	out, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already released")
	assert.Equal(t, "a: p\n", out)
}

func TestInvalidLabelsFlag(t *testing.T) {
	_, err := execute(t, "demo", "--labels", "float")
	assert.ErrorContains(t, err, "labels")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ltlc version dev\n", out)
}

func TestRunTestdataScript(t *testing.T) {
	out, err := execute(t, "run", filepath.Join("testdata", "mutex.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "safety: []¬(critical1 ∧ critical2)\n"+
		"liveness: [](¬trying1 ∨ <>critical1)\n"+
		"safety: []¬(critical1 ∧ critical2)\n", out)
}

func TestDemoReleasesEveryHandle(t *testing.T) {
	out, err := execute(t, "demo", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "ltl_handles_live labels=name 0")
	assert.Contains(t, out, "ltl_handles_released_total labels=name 19")
	assert.NotContains(t, out, "ltl_handles_rejected_total")
}

func TestRunMetricsForCleanScript(t *testing.T) {
	out, err := execute(t, "run", "--metrics", filepath.Join("testdata", "mutex.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "ltl_handles_live labels=name 0")
	assert.NotContains(t, out, "ltl_handles_rejected_total")
}
