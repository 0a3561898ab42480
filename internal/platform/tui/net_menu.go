package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-net/internal/config"
	"github.com/vovakirdan/tui-net/internal/core"
	"github.com/vovakirdan/tui-net/internal/games/netgame"
)

// NetSelection holds the user's choice from the size selector.
type NetSelection struct {
	Preset     int // 0 = size from config, 1-n = netgame.Presets entry
	Difficulty config.DifficultyPreset
}

// NetSizeModel lets users choose the board size and then the barrier
// difficulty before a Net puzzle starts.
type NetSizeModel struct {
	title            string
	cursor           int
	difficultyCursor int
	inDifficulty     bool
	width            int
	height           int
	keyMapper        *KeyMapper
	selection        NetSelection
	choosing         bool
	quitting         bool
	back             bool
}

// NewNetSizeModel creates a new size selection model.
func NewNetSizeModel(title string, width, height int) NetSizeModel {
	return NetSizeModel{
		title:            title,
		width:            width,
		height:           height,
		keyMapper:        NewKeyMapper(),
		choosing:         true,
		difficultyCursor: 1, // normal
	}
}

// Init initializes the model.
func (m NetSizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m NetSizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m NetSizeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDifficulty {
		return m.handleDifficultyKey(action)
	}
	return m.handleSizeKey(action)
}

// sizeOptions returns the size menu lines: the presets, then the config size.
func sizeOptions() []string {
	options := make([]string, 0, netgame.PresetCount()+1)
	for _, p := range netgame.Presets {
		options = append(options, fmt.Sprintf("%-8s %2dx%d", p.Name, p.Width, p.Height))
	}
	return append(options, "From config file")
}

func (m NetSizeModel) handleSizeKey(action MenuAction) (tea.Model, tea.Cmd) {
	count := netgame.PresetCount() + 1

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < count-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Preset = m.cursor + 1
		if m.cursor == count-1 {
			m.selection.Preset = 0
		}
		m.inDifficulty = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m NetSizeModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	presets := config.Presets()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.difficultyCursor > 0 {
			m.difficultyCursor--
		}
	case MenuActionDown:
		if m.difficultyCursor < len(presets)-1 {
			m.difficultyCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = presets[m.difficultyCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inDifficulty = false
	}

	return m, nil
}

// View renders the size or difficulty selection.
func (m NetSizeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDifficulty {
		return m.viewDifficulty()
	}
	return m.viewSizes()
}

func (m NetSizeModel) viewSizes() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	for i, option := range sizeOptions() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+option, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m NetSizeModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, preset := range config.Presets() {
		cursor := "  "
		if i == m.difficultyCursor {
			cursor = "> "
		}

		barriers := "barriers from config"
		if p, ok := config.BarrierProbabilityForPreset(preset); ok {
			barriers = fmt.Sprintf("%.0f%% barriers", p*100)
		}

		line := fmt.Sprintf("%s%-7s (%s)", cursor, preset, barriers)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m NetSizeModel) Selected() *NetSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m NetSizeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m NetSizeModel) WantsBack() bool {
	return m.back
}

// RunNetSizeSelector runs the size selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunNetSizeSelector(title string, cfg core.RuntimeConfig) (*NetSelection, error) {
	model := NewNetSizeModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(NetSizeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
