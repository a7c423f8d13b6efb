package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pathsnap/internal/path"
)

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, SuccessStyle, StatusStyle(path.StatusAdded))
	assert.Equal(t, ErrorStyle, StatusStyle(path.StatusRemoved))
	assert.Equal(t, WarningStyle, StatusStyle(path.StatusDuplicate))
	assert.Equal(t, NormalStyle, StatusStyle(path.StatusUnchanged))
}

func TestRenderKey(t *testing.T) {
	out := RenderKey("Q", "Quit")
	assert.Contains(t, out, "[Q]")
	assert.Contains(t, out, "Quit")
}

func TestColumns_MinimumDirectoryWidth(t *testing.T) {
	cols := columns(10)
	assert.Len(t, cols, 4)
	assert.Equal(t, minDirWidth, cols[3].Width)
	assert.Equal(t, "Directory", cols[3].Title)
}
