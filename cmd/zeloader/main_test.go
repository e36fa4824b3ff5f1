package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxnlabs/level-zero-loader/internal/app"
	"github.com/fxnlabs/level-zero-loader/internal/config"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"zeloader", "--verbosity", "error"}, args...))
	return out.String(), err
}

func TestOpsCommand(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "all",
			args:     []string{"ops"},
			contains: []string{"zeInit", "zeCommandListAppendLaunchKernel", "(all drivers)", "phModules[0]"},
		},
		{
			name:     "category",
			args:     []string{"ops", "--category", "Fence"},
			contains: []string{"zeFenceCreate", "zeFenceHostSynchronize"},
			excludes: []string{"zeInit"},
		},
		{
			name:     "since",
			args:     []string{"ops", "--since", "1.14"},
			contains: []string{"zeDriverGetDefaultContext"},
			excludes: []string{"zeContextCreate "},
		},
		{
			name:     "loader level",
			args:     []string{"ops", "--loader"},
			contains: []string{"zeInit", "zeDriverGet "},
			excludes: []string{"zeDeviceGet "},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}

	t.Run("bad category", func(t *testing.T) {
		_, err := run(t, "ops", "--category", "Nope")
		assert.Error(t, err)
	})
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "zeContextCreate", "zeImageCreate", "zeSamplerCreate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "zeContextCreate\t"+ze.ResultSuccess.String(), lines[0])
	assert.Equal(t, "zeImageCreate\t"+ze.ResultErrorUninitialized.String(), lines[1])
	assert.Equal(t, "zeSamplerCreate\t"+ze.ResultErrorUninitialized.String(), lines[2])

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := run(t, "check", "zeDoesNotExist")
		assert.ErrorContains(t, err, "unknown entry point")
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := run(t, "check", "--driver", "other", "zeInit")
		assert.Error(t, err)
	})
}

func TestDriversCommand(t *testing.T) {
	out, err := run(t, "drivers")
	require.NoError(t, err)
	assert.Contains(t, out, "cpu")
	assert.Contains(t, out, "1.14")
	assert.Contains(t, out, "true")
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo", "--no-banner")
	require.NoError(t, err)
	assert.Contains(t, out, "C = A")
	// A = [[0 1 2] [1 2 3]], B = [[0 -1] [1 0] [2 1]]
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "8")
}

func TestRunMatMul(t *testing.T) {
	var l *loader.Loader
	fxApp := fxtest.New(t, app.Module(config.Default()), fx.Populate(&l))
	fxApp.RequireStart()
	defer fxApp.RequireStop()

	out, err := runMatMul(l, 2, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 2, 8, 2}, out)

	_, err = runMatMul(l, 0, 3, 2)
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	_, err := run(t, "config", "init", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "strictHandleArrays")

	_, err = run(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")
	_, err = run(t, "config", "init", "--force", path)
	assert.NoError(t, err)

	out, err := run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "1.14")
	assert.Contains(t, out, "name: cpu")
}
