package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepSimpleComparison(t *testing.T) {
	ev, err := NewEvaluator(`_.status == "active"`)
	require.NoError(t, err)

	keep, err := ev.Keep(map[string]any{"status": "active"})
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = ev.Keep(map[string]any{"status": "stopped"})
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestKeepNumericComparison(t *testing.T) {
	ev, err := NewEvaluator(`_.port > 1024`)
	require.NoError(t, err)

	keep, err := ev.Keep(map[string]any{"port": 8080})
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = ev.Keep(map[string]any{"port": 80})
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestKeepStringExtension(t *testing.T) {
	ev, err := NewEvaluator(`_.name.startsWith("web")`)
	require.NoError(t, err)

	keep, err := ev.Keep(map[string]any{"name": "web-frontend"})
	require.NoError(t, err)
	assert.True(t, keep)
}

func TestNewEvaluatorCompileError(t *testing.T) {
	_, err := NewEvaluator(`_.name ==`)
	assert.ErrorContains(t, err, "compilation error")
}

func TestKeepNonBoolResult(t *testing.T) {
	ev, err := NewEvaluator(`_.name`)
	require.NoError(t, err)

	_, err = ev.Keep(map[string]any{"name": "web"})
	assert.ErrorContains(t, err, "want bool")
}

func TestKeepMissingKey(t *testing.T) {
	ev, err := NewEvaluator(`_.missing == "x"`)
	require.NoError(t, err)

	_, err = ev.Keep(map[string]any{"present": "y"})
	assert.Error(t, err)
}

func TestApplyMask(t *testing.T) {
	ev, err := NewEvaluator(`_.n >= 2`)
	require.NoError(t, err)

	docs := []map[string]any{
		{"n": 1},
		{"n": 2},
		{"n": 3},
	}
	keep, err := ev.Apply(docs)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, keep)
}

func TestApplyPropagatesRowError(t *testing.T) {
	ev, err := NewEvaluator(`_.n > 0`)
	require.NoError(t, err)

	_, err = ev.Apply([]map[string]any{{"n": 1}, {"other": true}})
	assert.ErrorContains(t, err, "row 1")
}
