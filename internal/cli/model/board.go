// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/corkboard/internal/cli/styles"
	"github.com/bnema/corkboard/internal/domain/entity"
	"github.com/bnema/corkboard/internal/infrastructure/config"
	"github.com/bnema/corkboard/internal/logging"
	"github.com/bnema/corkboard/internal/ui/canvas"
	"github.com/bnema/corkboard/internal/ui/component"
	"github.com/bnema/corkboard/internal/ui/input"
	"github.com/bnema/corkboard/internal/ui/interaction"
	uitheme "github.com/bnema/corkboard/internal/ui/theme"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptAudio
	promptEdit
)

// BoardModelConfig holds configuration for the board model.
type BoardModelConfig struct {
	Board  *canvas.Board
	Themes *uitheme.Manager
	Grid   input.MouseTranslator
	// PanStep is how far one arrow key moves the view, in screen pixels.
	PanStep float64
	// ConfigUpdates delivers reloaded configuration; nil disables hot reload.
	ConfigUpdates <-chan *config.Config
	// Status is shown in the status bar until the first action.
	Status string
}

// BoardModel is the Bubble Tea model of the whiteboard.
type BoardModel struct {
	// UI components
	help       help.Model
	keys       styles.BoardKeyMap
	promptKeys styles.PromptKeyMap
	input      textinput.Model

	// State
	elements  []component.Element // draw order, topmost last
	selected  entity.NoteID
	prompt    promptKind
	editing   entity.NoteID
	importing bool
	ticking   bool
	showHelp  bool
	status    string
	err       error
	width     int
	height    int

	// Dependencies
	ctx     context.Context
	board   *canvas.Board
	bus     *input.Bus
	grid    input.MouseTranslator
	themes  *uitheme.Manager
	theme   *styles.Theme
	panStep float64
	updates <-chan *config.Config
}

// NewBoardModel creates the whiteboard model. Notes already on the board
// get their elements immediately.
func NewBoardModel(ctx context.Context, theme *styles.Theme, cfg BoardModelConfig) BoardModel {
	ctx = logging.WithComponent(ctx, "board")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating board model")

	themes := cfg.Themes
	if themes == nil {
		themes = uitheme.NewManager(ctx, nil)
	}
	panStep := cfg.PanStep
	if panStep <= 0 {
		panStep = 32
	}

	m := BoardModel{
		help:       styles.NewStyledHelp(theme),
		keys:       styles.DefaultBoardKeyMap(),
		promptKeys: styles.DefaultPromptKeyMap(),
		ctx:        ctx,
		board:      cfg.Board,
		bus:        input.NewBus(ctx),
		grid:       cfg.Grid,
		themes:     themes,
		theme:      theme,
		panStep:    panStep,
		updates:    cfg.ConfigUpdates,
		status:     cfg.Status,
		width:      80,
		height:     24,
	}
	for _, note := range m.board.Notes() {
		m.addElement(note)
	}
	return m
}

// audioImportedMsg is sent when an audio import finishes.
type audioImportedMsg struct {
	notes []entity.Note
	err   error
}

// playbackTickMsg advances the playhead of playing audio notes.
type playbackTickMsg struct{}

// playbackInterval is how often playing notes are clocked.
const playbackInterval = 250 * time.Millisecond

func playbackTick() tea.Cmd {
	return tea.Tick(playbackInterval, func(time.Time) tea.Msg {
		return playbackTickMsg{}
	})
}

// configChangedMsg is sent when the config file was reloaded.
type configChangedMsg struct {
	cfg *config.Config
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return m.waitForConfig()
}

func (m BoardModel) waitForConfig() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configChangedMsg{cfg: cfg}
	}
}

// Update implements tea.Model.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePromptKey(msg)
		}
		return m.handleKeyMsg(msg)

	case audioImportedMsg:
		return m.handleAudioImported(msg)

	case configChangedMsg:
		return m.handleConfigChanged(msg)

	case playbackTickMsg:
		return m.handlePlaybackTick()
	}

	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BoardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.grid.Translate(msg)
	if !ok {
		return m, nil
	}
	ev.Point = m.board.ToLayer(ev.Point)

	switch ev.Kind {
	case input.PointerPress:
		if ev.Button != input.ButtonPrimary {
			return m, nil
		}
		return m.handlePress(ev.Point)
	case input.PointerMotion, input.PointerRelease:
		m.bus.Dispatch(ev)
	}
	return m, nil
}

func (m BoardModel) handlePress(p entity.Point) (tea.Model, tea.Cmd) {
	// One interaction at a time; a press during a drag whose release was
	// lost is ignored until the release arrives.
	if m.bus.Active() > 0 {
		return m, nil
	}
	el := m.elementAt(p)
	if el == nil {
		m.selected = ""
		return m, nil
	}
	m.selected = el.ID()

	role := el.Classify(p)
	if role == interaction.RoleOther {
		return m.handleAction(el, el.Activate(p))
	}

	var rect *entity.Rect
	if bounds, ok := el.Bounds(); ok {
		rect = &bounds
	}
	el.Controller().Begin(p, role, rect)
	return m, nil
}

// elementAt returns the topmost element under p.
func (m BoardModel) elementAt(p entity.Point) component.Element {
	for i := len(m.elements) - 1; i >= 0; i-- {
		if m.elements[i].Hit(p) {
			return m.elements[i]
		}
	}
	return nil
}

func (m BoardModel) handleAction(el component.Element, action component.Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case component.ActionDelete:
		m.deleteNote(el.ID())
	case component.ActionEdit:
		return m.openEditPrompt(el.ID())
	case component.ActionTogglePlay:
		if audio, ok := el.(*component.AudioNote); ok {
			m.status = playStatus(audio)
			return m.startClock()
		}
	case component.ActionSeek:
		if audio, ok := el.(*component.AudioNote); ok {
			cur, total := audio.Playhead()
			m.status = "seek " + component.FormatTime(cur) + " / " + component.FormatTime(total)
		}
	case component.ActionNone:
	}
	return m, nil
}

func playStatus(audio *component.AudioNote) string {
	if audio.Playing() {
		return "playing"
	}
	return "paused"
}

func (m BoardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.closeAll()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.NewNote):
		note := m.board.AddNote()
		m.addElement(note)
		m.selected = note.ID
		m.status = "note added"

	case key.Matches(msg, m.keys.AddAudio):
		if m.importing {
			m.status = "import already running"
			return m, nil
		}
		return m.openPrompt(promptAudio, styles.NewAudioPathInput(m.theme), "")

	case key.Matches(msg, m.keys.ZoomIn):
		m.board.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.board.ZoomOut()
	case key.Matches(msg, m.keys.ZoomReset):
		m.board.ResetZoom()

	case key.Matches(msg, m.keys.PanUp):
		m.pan(0, -1)
	case key.Matches(msg, m.keys.PanDown):
		m.pan(0, 1)
	case key.Matches(msg, m.keys.PanLeft):
		m.pan(-1, 0)
	case key.Matches(msg, m.keys.PanRight):
		m.pan(1, 0)

	case key.Matches(msg, m.keys.Edit):
		if m.selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		return m.openEditPrompt(m.selected)

	case key.Matches(msg, m.keys.Delete):
		if m.selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		m.deleteNote(m.selected)

	case key.Matches(msg, m.keys.Play):
		if audio, ok := m.element(m.selected).(*component.AudioNote); ok {
			audio.TogglePlay()
			m.status = playStatus(audio)
			return m.startClock()
		}
	}
	return m, nil
}

// startClock schedules playback ticks unless they are already running or
// nothing needs them.
func (m BoardModel) startClock() (tea.Model, tea.Cmd) {
	if m.ticking || !m.anyClocked() {
		return m, nil
	}
	m.ticking = true
	return m, playbackTick()
}

func (m BoardModel) anyClocked() bool {
	for _, el := range m.elements {
		if audio, ok := el.(*component.AudioNote); ok && audio.Clocked() {
			return true
		}
	}
	return false
}

func (m BoardModel) handlePlaybackTick() (tea.Model, tea.Cmd) {
	dt := playbackInterval.Seconds()
	for _, el := range m.elements {
		if audio, ok := el.(*component.AudioNote); ok && audio.Advance(dt) {
			m.status = "track ended"
		}
	}
	if !m.anyClocked() {
		m.ticking = false
		return m, nil
	}
	return m, playbackTick()
}

// pan moves the view by one step, snapped to whole cells so that drawing
// and hit-testing agree.
func (m *BoardModel) pan(dx, dy float64) {
	cols := math.Max(1, math.Round(m.panStep/m.grid.CellWidth))
	rows := math.Max(1, math.Round(m.panStep/m.grid.CellHeight))
	m.board.Pan(entity.Point{X: dx * cols * m.grid.CellWidth, Y: dy * rows * m.grid.CellHeight})
}

func (m BoardModel) openEditPrompt(id entity.NoteID) (tea.Model, tea.Cmd) {
	note, ok := m.board.Get(id)
	if !ok {
		return m, nil
	}
	if note.IsAudio() {
		m.status = "audio notes have no text"
		return m, nil
	}
	m.editing = id
	return m.openPrompt(promptEdit, styles.NewNoteInput(m.theme), note.Content)
}

func (m BoardModel) openPrompt(kind promptKind, ti textinput.Model, value string) (tea.Model, tea.Cmd) {
	ti.SetValue(value)
	ti.Width = max(10, m.width-8)
	cmd := ti.Focus()
	m.input = ti
	m.prompt = kind
	return m, cmd
}

func (m BoardModel) closePrompt() BoardModel {
	m.input.Blur()
	m.prompt = promptNone
	m.editing = ""
	return m
}

func (m BoardModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.promptKeys.Cancel):
		return m.closePrompt(), nil

	case key.Matches(msg, m.promptKeys.Submit):
		value := m.input.Value()
		kind, editing := m.prompt, m.editing
		m = m.closePrompt()
		switch kind {
		case promptAudio:
			return m.startImport(value)
		case promptEdit:
			if err := m.board.SetContent(editing, value); err != nil {
				m.err = err
			}
		case promptNone:
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BoardModel) startImport(value string) (tea.Model, tea.Cmd) {
	paths := splitPaths(value)
	if len(paths) == 0 {
		return m, nil
	}
	m.importing = true
	m.status = "importing audio..."

	ctx, board := m.ctx, m.board
	return m, func() tea.Msg {
		notes, err := board.AddAudioNotes(ctx, paths)
		return audioImportedMsg{notes: notes, err: err}
	}
}

// splitPaths splits on whitespace and expands a leading ~.
func splitPaths(value string) []string {
	fields := strings.Fields(value)
	home, _ := os.UserHomeDir()
	for i, f := range fields {
		if home != "" && (f == "~" || strings.HasPrefix(f, "~/")) {
			fields[i] = filepath.Join(home, strings.TrimPrefix(f, "~"))
		}
	}
	return fields
}

func (m BoardModel) handleAudioImported(msg audioImportedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	m.importing = false

	for _, note := range msg.notes {
		m.addElement(note)
	}
	if len(msg.notes) > 0 {
		m.selected = msg.notes[len(msg.notes)-1].ID
	}

	m.err = msg.err
	switch {
	case msg.err != nil && errors.Is(msg.err, canvas.ErrUnsupportedAudio):
		m.status = "some files are not supported audio"
	case msg.err != nil:
		m.status = "some files could not be imported"
	default:
		m.status = "audio imported"
	}
	log.Debug().Int("count", len(msg.notes)).Err(msg.err).Msg("audio import applied")
	return m, nil
}

func (m BoardModel) handleConfigChanged(msg configChangedMsg) (tea.Model, tea.Cmd) {
	if msg.cfg == nil {
		return m, m.waitForConfig()
	}
	m.themes.UpdateFromConfig(m.ctx, msg.cfg)
	m.board.SetZoomRange(msg.cfg.ZoomRange())
	if msg.cfg.Canvas.PanStep > 0 {
		m.panStep = msg.cfg.Canvas.PanStep
	}
	m.status = "config reloaded"
	logging.FromContext(m.ctx).Info().Msg("config reloaded")
	return m, m.waitForConfig()
}

func (m *BoardModel) addElement(note entity.Note) {
	deps := component.Deps{Board: m.board, Tracker: m.bus, Grid: m.grid}
	m.elements = append(m.elements, component.New(m.ctx, note, deps))
}

func (m BoardModel) element(id entity.NoteID) component.Element {
	for _, el := range m.elements {
		if el.ID() == id {
			return el
		}
	}
	return nil
}

// deleteNote unmounts the element before dropping the note.
func (m *BoardModel) deleteNote(id entity.NoteID) {
	log := logging.FromContext(m.ctx)
	for i, el := range m.elements {
		if el.ID() == id {
			el.Close()
			m.elements = append(m.elements[:i:i], m.elements[i+1:]...)
			break
		}
	}
	if err := m.board.Delete(id); err != nil {
		log.Warn().Err(err).Str("note_id", string(id)).Msg("delete failed")
	}
	if m.selected == id {
		m.selected = ""
	}
	m.status = "note deleted"
}

// closeAll unmounts every element.
func (m *BoardModel) closeAll() {
	for _, el := range m.elements {
		el.Close()
	}
}

// View implements tea.Model.
func (m BoardModel) View() string {
	footer := m.renderFooter()
	canvasH := max(0, m.height-lipgloss.Height(footer))

	theme := m.themes.Current()
	pan := m.board.PanOffset()
	panCol, panRow := m.grid.ToCell(pan)

	layers := make([]canvas.Layer, 0, len(m.elements))
	for _, el := range m.elements {
		box, ok := el.Box()
		if !ok {
			continue
		}
		layers = append(layers, canvas.Layer{
			Col:     box.Col + panCol,
			Row:     box.Row + panRow,
			Content: el.View(theme),
		})
	}

	board := canvas.Compose(m.width, canvasH, layers)
	if board == "" {
		return footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, board, footer)
}

func (m BoardModel) renderFooter() string {
	var parts []string

	if m.prompt != promptNone {
		parts = append(parts, m.theme.InputBox(m.input.View(), true))
		parts = append(parts, m.help.ShortHelpView(m.promptKeys.ShortHelp()))
	} else if m.showHelp {
		parts = append(parts, m.help.FullHelpView(m.keys.FullHelp()))
	}

	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m BoardModel) renderStatusBar() string {
	left := []string{
		m.theme.ZoomBadge(m.board.ZoomPercent()),
		m.theme.CountBadge(m.board.Len()),
	}
	if note, ok := m.board.Get(m.selected); ok {
		left = append(left, m.theme.MutedBadge(noteLabel(note)))
	}

	msg := m.status
	if m.err != nil {
		msg = m.theme.ErrorStyle.Render(m.err.Error())
	}
	if !m.showHelp && m.prompt == promptNone {
		msg = strings.TrimSpace(msg + "  " + m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, append(left, " ", msg)...)
	return m.theme.StatusBar.MaxWidth(max(1, m.width)).Render(bar)
}

func noteLabel(note entity.Note) string {
	label := note.Content
	if note.IsAudio() && note.Metadata.Title != "" {
		label = note.Metadata.Title
	}
	if i := strings.IndexByte(label, '\n'); i >= 0 {
		label = label[:i]
	}
	const maxLabel = 24
	if len([]rune(label)) > maxLabel {
		label = string([]rune(label)[:maxLabel-1]) + "…"
	}
	return label
}
