package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func press(model tea.Model, keys ...string) SaveBrowser {
	for _, key := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		switch key {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		model, _ = model.Update(msg)
	}
	return model.(SaveBrowser)
}

func sampleRows(n int) []Row {
	return lo.Map(lo.Range(n), func(i int, _ int) Row {
		return Row{Label: fmt.Sprintf("row%d", i), Value: fmt.Sprint(i)}
	})
}

func TestSaveBrowser_Navigation(t *testing.T) {
	browser := CreateSaveBrowser("test", sampleRows(3))

	browser = press(browser, "up")
	assert.Equal(t, 0, browser.cursor)

	browser = press(browser, "down", "j", "down", "down")
	assert.Equal(t, 2, browser.cursor)

	browser = press(browser, "k")
	assert.Equal(t, 1, browser.cursor)

	browser = press(browser, "G")
	assert.Equal(t, 2, browser.cursor)
	browser = press(browser, "g")
	assert.Equal(t, 0, browser.cursor)
}

func TestSaveBrowser_Scrolling(t *testing.T) {
	model, _ := CreateSaveBrowser("test", sampleRows(20)).Update(tea.WindowSizeMsg{Width: 80, Height: chromeHeight + 5})
	browser := model.(SaveBrowser)

	browser = press(browser, "down", "down", "down", "down", "down", "down")
	assert.Equal(t, 6, browser.cursor)
	assert.Equal(t, 2, browser.offset)

	view := browser.View()
	assert.Contains(t, view, "row6")
	assert.Contains(t, view, "7/20")
	assert.NotContains(t, view, "row1 ")
	assert.NotContains(t, view, "row7")
}

func TestSaveBrowser_Detail(t *testing.T) {
	browser := CreateSaveBrowser("test", []Row{{Label: "gameplayData.coins_ByteArray[0]", Value: "255"}})

	browser = press(browser, "enter")
	assert.Equal(t, BrowseStateDetail, browser.state)
	assert.Contains(t, browser.View(), "gameplayData.coins_ByteArray[0]")
	assert.Contains(t, browser.View(), "255")

	browser = press(browser, "esc")
	assert.Equal(t, BrowseStateList, browser.state)
}

func TestSaveBrowser_Empty(t *testing.T) {
	browser := press(CreateSaveBrowser("test", []Row{}), "enter", "down")
	assert.Equal(t, BrowseStateList, browser.state)
	assert.Contains(t, browser.View(), "The save is empty.")
}

func TestSaveBrowser_Quit(t *testing.T) {
	_, cmd := CreateSaveBrowser("test", sampleRows(1)).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "a", truncate("abcd", 1))
}
