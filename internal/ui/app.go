package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/commentbox/internal/analysis"
	"github.com/five82/commentbox/internal/commentator"
	"github.com/five82/commentbox/internal/prefs"
	"github.com/five82/commentbox/internal/session"
	"github.com/five82/commentbox/internal/share"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    analysis.Analyzer
	Session   *session.Controller
	Sharer    share.Sharer
	Logger    *zap.Logger
	APIURL    string
	ThemeName string
	PrefsPath string
}

type healthState int

const (
	healthUnknown healthState = iota
	healthOnline
	healthOffline
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    analysis.Analyzer
	session   *session.Controller
	sharer    share.Sharer
	logger    *zap.Logger
	apiURL    string
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Components
	input   urlField
	spinner spinner.Model
	modal   commentaryModal
	toasts  toastQueue

	health  healthState
	pending string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sess := opts.Session
	if sess == nil {
		sess = session.New()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sharer := opts.Sharer
	if sharer == nil {
		sharer = share.New("")
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		session:   sess,
		sharer:    sharer,
		logger:    logger,
		apiURL:    opts.APIURL,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     newURLField(),
		spinner:   sp,
		modal:     newCommentaryModal(),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		healthCmd(m.ctx, m.client),
		healthTickCmd(HealthInterval),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		return m.handleAnalysisDone(msg)

	case actionMsg:
		if msg.err != nil {
			m.logger.Warn(msg.action+" failed", zap.Error(msg.err))
		}
		cmd := m.toasts.push(msg.notice)
		return m, cmd

	case toastExpiredMsg:
		m.toasts.dismiss(msg.id)
		return m, nil

	case healthMsg:
		prev := m.health
		if msg.err != nil {
			m.health = healthOffline
			if prev != healthOffline {
				m.logger.Warn("api health check failed", zap.Error(msg.err))
			}
		} else {
			m.health = healthOnline
			if prev != healthOnline {
				m.logger.Info("api reachable", zap.String("status", msg.status))
			}
		}
		return m, nil

	case healthTickMsg:
		return m, tea.Batch(healthCmd(m.ctx, m.client), healthTickCmd(HealthInterval))
	}

	// Cursor blink and anything else the text input understands.
	var cmd tea.Cmd
	m.input, cmd = m.input.update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.session.State().ModalOpen {
		return m.modal.view(m.theme, m.keys, m.help) + "\n" + m.renderToasts()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	if m.session.State().ModalOpen {
		return m.handleModalKey(msg)
	}
	return m.handleMainKey(msg)
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.NextCommentary):
		m.session.SelectOffset(1)
		m.logSelection()
		return m, nil

	case key.Matches(msg, m.keys.PrevCommentary):
		m.session.SelectOffset(-1)
		m.logSelection()
		return m, nil

	case key.Matches(msg, m.keys.PickFirst):
		m.pick(0)
		return m, nil

	case key.Matches(msg, m.keys.PickSecond):
		m.pick(1)
		return m, nil

	case key.Matches(msg, m.keys.PickThird):
		m.pick(2)
		return m, nil

	case key.Matches(msg, m.keys.Reopen):
		if m.session.OpenModal() {
			m.syncModal()
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.input.reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.update(msg)
	return m, cmd
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.session.State()
	switch {
	case key.Matches(msg, m.keys.Close):
		m.session.CloseModal()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(st.Commentary)
	case key.Matches(msg, m.keys.Share):
		return m, shareCmd(m.ctx, m.sharer, st.CommentaryBy.ShareTitle(), st.Commentary)
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.update(msg)
	return m, cmd
}

// submit starts an analysis for the URL in the input field. It is a no-op
// while a request is in flight or when the field is blank.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.session.Loading() {
		return m, nil
	}
	raw, ok := m.input.submit()
	if !ok {
		return m, nil
	}

	t, err := m.session.Begin(raw)
	if err != nil {
		if errors.Is(err, session.ErrBusy) || errors.Is(err, session.ErrEmptyURL) {
			return m, nil
		}
		m.logger.Info("url rejected", zap.String("url", raw), zap.Error(err))
		cmd := m.toasts.push(session.Failure(err))
		return m, cmd
	}

	m.pending = t.Request.URL
	m.logger.Info("analysis submitted",
		zap.Uint64("ticket", t.ID),
		zap.String("url", t.Request.URL),
		zap.String("commentator", t.Request.Commentator),
	)
	return m, tea.Batch(analyzeCmd(m.ctx, m.client, t), m.spinner.Tick)
}

func (m Model) handleAnalysisDone(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	notice, ok := m.session.Complete(msg.ticket, msg.resp, msg.err)
	if !ok {
		m.logger.Debug("dropped stale analysis result", zap.Uint64("ticket", msg.ticket.ID))
		return m, nil
	}

	if notice.Level == session.LevelError {
		m.logger.Warn("analysis failed",
			zap.Uint64("ticket", msg.ticket.ID),
			zap.String("commentator", msg.ticket.Commentator.ID),
			zap.String("error", notice.Text),
			zap.Bool("network", analysis.IsNetwork(msg.err)),
			zap.Int("status", analysis.StatusCode(msg.err)),
		)
	} else {
		m.logger.Info("analysis complete",
			zap.Uint64("ticket", msg.ticket.ID),
			zap.String("commentator", msg.ticket.Commentator.ID),
		)
		m.syncModal()
	}
	cmd := m.toasts.push(notice)
	return m, cmd
}

func (m *Model) syncModal() {
	st := m.session.State()
	m.modal.setContent(st.CommentaryBy.Title(), st.Commentary, st.WebsiteType)
}

func (m *Model) pick(i int) {
	all := commentator.All()
	if i < 0 || i >= len(all) {
		return
	}
	if err := m.session.Select(all[i].ID); err == nil {
		m.logSelection()
	}
}

func (m Model) logSelection() {
	m.logger.Debug("commentator selected", zap.String("commentator", m.session.Selected().ID))
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

func (m *Model) applyTheme() {
	m.input.applyTheme(m.theme)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullSeparator = sepStyle
}

func (m *Model) layout() {
	w := m.width - 32
	if w > 70 {
		w = 70
	}
	m.input.setWidth(w)
	m.modal.resize(m.width, m.height-maxToasts-1)
	m.help.Width = m.width
}

// Rendering

func (m Model) renderMain() string {
	styles := m.theme.Styles()
	st := m.session.State()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(styles.Section.Render("Choose your commentator"))
	b.WriteString("\n")
	b.WriteString(renderCards(m.theme, st.Selected, m.width))
	b.WriteString("\n\n")
	b.WriteString(styles.Section.Render("Website"))
	b.WriteString("\n")
	b.WriteString(m.renderInputRow(st))
	if st.Commentary != "" && !st.Loading {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Last: " + st.CommentaryBy.Title() + " · ctrl+o to reopen"))
	}

	content := lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(b.String())
	footer := lipgloss.NewStyle().Padding(0, 2).Render(m.help.View(m.keys))

	gap := m.height - lipgloss.Height(content) - maxToasts - lipgloss.Height(footer)
	if gap < 0 {
		gap = 0
	}
	return content + strings.Repeat("\n", gap+1) + m.renderToasts() + "\n" + footer
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Title.Render("🏏 Commentary Box")
	if m.width >= LayoutNarrowWidth {
		left += "  " + styles.Subtitle.Render("Your website, called by the legends of the game")
	}
	right := m.renderHealth()

	space := m.width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + right
}

func (m Model) renderHealth() string {
	styles := m.theme.Styles()
	switch m.health {
	case healthOnline:
		return styles.SuccessText.Render("● API online")
	case healthOffline:
		return styles.DangerText.Render("● API offline")
	default:
		return styles.FaintText.Render("○ API")
	}
}

func (m Model) renderInputRow(st session.State) string {
	styles := m.theme.Styles()

	field := styles.Input.Render(m.input.view())
	var button string
	if st.Loading {
		button = styles.ButtonBusy.Render(m.spinner.View() + " Analyzing...")
	} else {
		button = styles.Button.Render("Analyze ⏎")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button)

	who := styles.MutedText.Render("Commentator: ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(st.Selected.Accent)).Render(st.Selected.Emoji+" "+st.Selected.Name)
	if st.Loading && m.pending != "" {
		who += styles.FaintText.Render("  ·  calling the game on " + truncateMiddle(m.pending, 48))
	}
	return row + "\n" + who
}

// renderToasts returns a block exactly maxToasts lines tall.
func (m Model) renderToasts() string {
	return lipgloss.PlaceVertical(maxToasts, lipgloss.Bottom, m.toasts.view(m.theme, m.width))
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
