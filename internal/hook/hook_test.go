package hook_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomobar/internal/hook"
)

func TestRunEmptyCommand(t *testing.T) {
	assert.NoError(t, hook.Shell{}.Run(""))
	assert.NoError(t, hook.Shell{}.Run("   "))
}

func TestRunUnbalancedQuotes(t *testing.T) {
	assert.Error(t, hook.Shell{}.Run(`echo "oops`))
}

func TestRunQuotedArguments(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("touch is not available on Windows")
	}

	path := filepath.Join(t.TempDir(), "phase done")

	require.NoError(t, hook.Shell{}.Run(`touch "`+path+`"`))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRunFailingCommand(t *testing.T) {
	err := hook.Shell{}.Run("pomobar-command-that-does-not-exist")
	assert.Error(t, err)
}
