package styles_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/corkboard/internal/cli/styles"
)

func TestBoardKeyMap_FullHelpCoversEveryBinding(t *testing.T) {
	keys := styles.DefaultBoardKeyMap()

	var all []key.Binding
	for _, group := range keys.FullHelp() {
		all = append(all, group...)
	}

	assert.Len(t, all, 14)
	for _, b := range all {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Keys())
	}
}

func TestBoardKeyMap_Keys(t *testing.T) {
	keys := styles.DefaultBoardKeyMap()

	assert.Contains(t, keys.NewNote.Keys(), "n")
	assert.Contains(t, keys.AddAudio.Keys(), "a")
	assert.Contains(t, keys.ZoomIn.Keys(), "+")
	assert.Contains(t, keys.ZoomOut.Keys(), "-")
	assert.Contains(t, keys.Edit.Keys(), "e")
	assert.Contains(t, keys.Delete.Keys(), "x")
	assert.Contains(t, keys.Help.Keys(), "?")
	assert.Contains(t, keys.Quit.Keys(), "q")
}
