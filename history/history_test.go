package history

import (
	"os"
	"path/filepath"
	"testing"

	"axion/unit"

	"github.com/stretchr/testify/assert"
)

func TestAddAndShow(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	assert.NoError(t, Add("3cm*4cm", 12, unit.New(2, 0, 0)))
	assert.NoError(t, Add("2+2", 4, unit.One()))

	data, err := os.ReadFile(filepath.Join(dir, historyFile))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "3cm*4cm")

	assert.NoError(t, Show())
}

func TestShowWithNoHistory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	assert.NoError(t, Show())
}
