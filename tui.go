// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

// ExplorerMode decides what enter does with the typed keys
type ExplorerMode int

const (
	ModeInsert ExplorerMode = iota
	ModeLookup
)

func (m ExplorerMode) String() string {
	if m == ModeLookup {
		return "Lookup"
	}
	return "Insert"
}

// focus targets, cycled with tab
const (
	focusInput = iota
	focusKeys
	focusTree
)

// Model represents the Bubble Tea application state
type Model struct {
	mode  ExplorerMode
	ready bool

	textInput    textinput.Model
	keysList     list.Model
	treeViewport viewport.Model

	// Data
	index       *KeyIndex
	renderCache *cache.Cache
	config      *Config

	// State
	focusIndex int
	status     string
	statusErr  bool
	lastKeys   []string // keys touched by the last enter, highlighted in the list

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// keyItem represents a key in the ordered keys list
type keyItem struct {
	key    string
	recent bool
}

func (i keyItem) FilterValue() string { return i.key }
func (i keyItem) Title() string       { return i.key }
func (i keyItem) Description() string {
	if i.recent {
		return "✨ just touched"
	}
	return ""
}

// InitialModel creates the initial model
func InitialModel(index *KeyIndex, rc *cache.Cache, config *Config, mode ExplorerMode) Model {
	ti := textinput.New()
	ti.Placeholder = "Type keys, quote the ones with spaces..."
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	keysList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	keysList.SetShowTitle(false)
	keysList.SetShowHelp(false)

	treeViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		mode:            mode,
		textInput:       ti,
		keysList:        keysList,
		treeViewport:    treeViewport,
		index:           index,
		renderCache:     rc,
		config:          config,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.refresh()
	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f2":
			if m.mode == ModeInsert {
				m.mode = ModeLookup
			} else {
				m.mode = ModeInsert
			}
			m.setStatus(fmt.Sprintf("%s mode", m.mode), false)
			return m, nil
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % 3
			if m.focusIndex == focusInput {
				return m, m.textInput.Focus()
			}
			m.textInput.Blur()
			return m, nil
		case "ctrl+y":
			m.copyKeys()
			return m, nil
		case "enter":
			if m.focusIndex == focusInput {
				m.submit(m.textInput.Value())
				m.textInput.Reset()
				return m, nil
			}
		}
		return m.updateFocused(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		m.ready = true
	}

	return m, nil
}

// updateFocused forwards a key to the component that has focus
func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focusIndex {
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case focusKeys:
		m.keysList, cmd = m.keysList.Update(msg)
	case focusTree:
		m.treeViewport, cmd = m.treeViewport.Update(msg)
	}
	return m, cmd
}

// submit inserts or looks up every key on line, depending on the mode,
// and reports the outcome in the status line.
func (m *Model) submit(line string) {
	keys, err := splitKeys(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if len(keys) == 0 {
		return
	}
	m.lastKeys = keys

	if m.mode == ModeLookup {
		var found, missing []string
		for _, key := range keys {
			if m.index.Contains(key) {
				found = append(found, key)
			} else {
				missing = append(missing, key)
			}
		}
		switch {
		case len(missing) == 0:
			m.setStatus(fmt.Sprintf("✔ all %d found", len(found)), false)
		case len(found) == 0:
			m.setStatus(fmt.Sprintf("✘ not found: %s", strings.Join(missing, ", ")), true)
		default:
			m.setStatus(fmt.Sprintf("✔ %d found, ✘ not found: %s", len(found), strings.Join(missing, ", ")), true)
		}
		m.refresh()
		return
	}

	heightBefore := m.index.Tree().Height()
	added := 0
	for _, key := range keys {
		if m.index.Add(key) {
			added++
		}
	}
	m.setStatus(fmt.Sprintf("➕ %d new, %d duplicate, height %d → %d",
		added, len(keys)-added, heightBefore, m.index.Tree().Height()), false)
	m.refresh()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// copyKeys copies the ordered keys to the clipboard
func (m *Model) copyKeys() {
	if err := clipboard.WriteAll(strings.Join(m.index.Keys(), "\n")); err != nil {
		m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied %d keys to clipboard", m.index.Len()), false)
}

// refresh rebuilds the keys list and the tree pane from the index
func (m *Model) refresh() {
	touched := make(map[string]bool, len(m.lastKeys))
	for _, key := range m.lastKeys {
		touched[key] = true
	}

	keys := m.index.Keys()
	items := make([]list.Item, len(keys))
	for i, key := range keys {
		items[i] = keyItem{key: key, recent: touched[key]}
	}
	m.keysList.SetItems(items)
	m.treeViewport.SetContent(m.treeContent())
}

// treeContent is the stats header followed by the diagram, or by a note
// when the tree is too large to draw.
func (m *Model) treeContent() string {
	header := statsMarkdown(m.index.Stats())
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(header); err == nil {
			header = rendered
		}
	}

	if m.index.Len() > m.config.Display.MaxPrintKeys {
		return header + fmt.Sprintf("  %d keys are too many to draw here, use 'keytree print --force'.\n", m.index.Len())
	}
	return header + GetOrRender(m.renderCache, m.index)
}

// statsMarkdown summarises the index as a markdown table
func statsMarkdown(stats IndexStats) string {
	if stats.Size == 0 {
		return "## Tree\n\n*empty*: insert a few keys to grow it.\n"
	}
	return fmt.Sprintf("## Tree\n\n"+
		"| keys | height | AVL bound | duplicates | bloom rejections |\n"+
		"|---|---|---|---|---|\n"+
		"| %d | %d | %.1f | %d | %d |\n\n"+
		"`%s` … `%s`\n",
		stats.Size, stats.Height, stats.HeightBound, stats.Duplicates, stats.Rejected,
		stats.Min, stats.Max)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	boxStyle := func(focus int) lipgloss.Style {
		if m.focusIndex == focus {
			return m.styles.BorderFocused
		}
		return m.styles.BorderBlurred
	}

	m.textInput.Width = leftWidth - 4
	inputTitle := fmt.Sprintf(" ⌨  %s keys", m.mode)
	inputBox := boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.textInput.View(),
		))

	keysBox := boxStyle(focusKeys).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(fmt.Sprintf(" 🔑 Keys in order (%d)", m.index.Len())),
			m.keysList.View(),
		))

	treeBox := boxStyle(focusTree).
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(" 🌳 Tree"),
			m.treeViewport.View(),
		))

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, keysBox),
		treeBox,
	)

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panes,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(status),
		m.renderHelp(),
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.keysList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = inputHeight + listHeight
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	other := ModeLookup
	if m.mode == ModeLookup {
		other = ModeInsert
	}

	keys := []string{"enter", "f2", "tab", "ctrl+y", "esc"}
	descs := []string{
		strings.ToLower(m.mode.String()) + " keys",
		strings.ToLower(other.String()) + " mode",
		"switch focus",
		"copy keys",
		"quit",
	}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the Bubble Tea application
func runExplorer(index *KeyIndex, config *Config) error {
	model := InitialModel(index, NewRenderCache(config.Display.RenderTTL), config, ModeInsert)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
