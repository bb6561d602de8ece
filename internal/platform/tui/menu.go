package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// MenuChoice is what the user picked in the menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuAttract
	MenuHistory
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: MenuPlay, Title: "Play"},
	{Choice: MenuAttract, Title: "Attract Mode"},
	{Choice: MenuHistory, Title: "Session History"},
	{Choice: MenuQuit, Title: "Quit"},
}

// Menu styles
var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBrickStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	menuPreviewStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	layouts   []breakout.Layout
	cursor    int
	layout    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a new menu model. The layout cursor starts on
// layoutID when it names a built-in layout.
func NewMenuModel(cfg core.RuntimeConfig, layoutID string) MenuModel {
	layouts := breakout.BuiltinLayouts()
	start := 0
	for i, l := range layouts {
		if l.ID == layoutID {
			start = i
		}
	}

	return MenuModel{
		items:     menuItems,
		layouts:   layouts,
		layout:    start,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.layout = (m.layout - 1 + len(m.layouts)) % len(m.layouts)

	case MenuActionRight:
		m.layout = (m.layout + 1) % len(m.layouts)

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Choice == MenuQuit {
			m.quitting = true
		} else {
			m.selected = &selected
		}
		return m, tea.Quit // Exit menu to start the selection

	case MenuActionHistory:
		m.selected = &MenuItem{Choice: MenuHistory}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  B R E A K O U T  "), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Layout picker with a preview of the mask
	layout := m.layouts[m.layout]
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("< Layout: %s >", layout.Name), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(menuPreviewStyle.Render(renderLayoutPreview(layout)), m.width))
	b.WriteString("\n")

	// Footer with controls
	controls := "Up/Down: Navigate  |  Left/Right: Layout  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderLayoutPreview draws a layout mask with brick glyphs.
func renderLayoutPreview(l breakout.Layout) string {
	rows := make([]string, len(l.Rows))
	for i, row := range l.Rows {
		var sb strings.Builder
		for _, ch := range row {
			if ch == '#' {
				sb.WriteString(menuBrickStyle.Render("██"))
			} else {
				sb.WriteString(menuDimStyle.Render("··"))
			}
		}
		rows[i] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Layout returns the layout under the layout cursor.
func (m MenuModel) Layout() breakout.Layout {
	return m.layouts[m.layout]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers a multi-line block within given width.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Layout string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, layoutID string) (MenuResult, error) {
	model := NewMenuModel(cfg, layoutID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Layout: m.Layout().ID,
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Choice = m.Selected().Choice
	return result, nil
}
