// Package dashboard is the student's home screen: profile, weak areas, AI
// resources, notes pad and focus timer.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/teamlowkey/studybuddy/internal/focus"
	"github.com/teamlowkey/studybuddy/internal/notes"
	"github.com/teamlowkey/studybuddy/internal/performance"
	"github.com/teamlowkey/studybuddy/internal/recommend"
	"github.com/teamlowkey/studybuddy/internal/router"
	"github.com/teamlowkey/studybuddy/internal/screen"
	"github.com/teamlowkey/studybuddy/internal/screens/analysis"
	"github.com/teamlowkey/studybuddy/internal/ui/components"
	"github.com/teamlowkey/studybuddy/internal/ui/layout"
	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

var navItems = []string{"Dashboard", "AI Recommendations", "Test Results", "My Notes"}

type fetchDoneMsg struct{ state recommend.State }

type notesLoadedMsg struct{ err error }

type notesSavedMsg struct{ err error }

type timerTickMsg struct{ gen int }

// DashboardScreen is the combined student dashboard.
type DashboardScreen struct {
	ctx     context.Context
	student performance.Student
	report  performance.Report
	fetcher *recommend.Fetcher
	pad     *notes.Pad
	logger  zerolog.Logger

	spinner  spinner.Model
	inflight int

	notes    textarea.Model
	editing  bool
	notesErr string

	// Saves run one at a time; edits made meanwhile are saved after.
	saving    bool
	dirty     bool
	lastSaved string

	timer    *focus.Timer
	timerGen int
	timesUp  bool

	studyMode bool
}

var (
	_ screen.Screen          = (*DashboardScreen)(nil)
	_ screen.KeyHintProvider = (*DashboardScreen)(nil)
	_ screen.InputCapturer   = (*DashboardScreen)(nil)
	_ screen.UserLabeler     = (*DashboardScreen)(nil)
)

// New creates the dashboard for student. Fetches and note writes run
// under ctx.
func New(ctx context.Context, student performance.Student, fetcher *recommend.Fetcher, pad *notes.Pad, logger zerolog.Logger) *DashboardScreen {
	report, err := performance.Analyze(student.Marks)
	if err != nil {
		logger.Warn().Err(err).Str("student", student.Name).Msg("marks could not be analyzed")
	}

	ta := textarea.New()
	ta.Placeholder = "Jot down formulas, doubts, reminders..."
	ta.ShowLineNumbers = false
	ta.SetHeight(6)

	return &DashboardScreen{
		ctx:     ctx,
		student: student,
		report:  report,
		fetcher: fetcher,
		pad:     pad,
		logger:  logger.With().Str("screen", "dashboard").Logger(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
		notes: ta,
		timer: focus.New(),
	}
}

func (d *DashboardScreen) Title() string {
	if d.studyMode {
		return "Study Mode"
	}
	return "Dashboard"
}

func (d *DashboardScreen) UserLabel() string {
	return fmt.Sprintf("%s · Class %s %s", d.student.Name, d.student.Class, d.student.Stream)
}

func (d *DashboardScreen) CapturingInput() bool { return d.editing }

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.editing {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Done editing"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	timer := "Start timer"
	if d.timer.Running() {
		timer = "Pause timer"
	}
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "n", Description: "Notes"},
		{Key: "t", Description: timer},
		{Key: "x", Description: "Reset"},
		{Key: "s", Description: "Study mode"},
		{Key: "a", Description: "Analysis"},
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return tea.Batch(d.loadNotes(), d.refresh())
}

// State returns the recommendation state the panel renders.
func (d *DashboardScreen) State() recommend.State {
	if d.fetcher == nil {
		return recommend.Idle{}
	}
	return d.fetcher.State()
}

func (d *DashboardScreen) refresh() tea.Cmd {
	if d.fetcher == nil {
		return nil
	}
	d.inflight++
	ctx, f, p := d.ctx, d.fetcher, d.student.Profile()
	fetch := func() tea.Msg {
		return fetchDoneMsg{state: f.Fetch(ctx, p)}
	}
	return tea.Batch(d.spinner.Tick, fetch)
}

func (d *DashboardScreen) loadNotes() tea.Cmd {
	if d.pad == nil {
		return nil
	}
	ctx, pad := d.ctx, d.pad
	return func() tea.Msg {
		return notesLoadedMsg{err: pad.Load(ctx)}
	}
}

// saveNotes writes the textarea contents, or marks them dirty when a save
// is already running.
func (d *DashboardScreen) saveNotes() tea.Cmd {
	if d.pad == nil || d.notes.Value() == d.lastSaved {
		return nil
	}
	if d.saving {
		d.dirty = true
		return nil
	}
	d.saving = true
	d.lastSaved = d.notes.Value()
	ctx, pad, text := d.ctx, d.pad, d.lastSaved
	return func() tea.Msg {
		return notesSavedMsg{err: pad.Set(ctx, text)}
	}
}

func timerTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		d.inflight = max(d.inflight-1, 0)
		if f, ok := msg.state.(recommend.Failed); ok {
			d.logger.Warn().Err(f.Err).Msg("showing fallback resources")
		}
		return d, nil

	case notesLoadedMsg:
		if msg.err != nil {
			d.notesErr = "Notes could not be loaded."
			d.logger.Error().Err(msg.err).Msg("load notes")
			return d, nil
		}
		d.notes.SetValue(d.pad.Text())
		d.lastSaved = d.pad.Text()
		return d, nil

	case notesSavedMsg:
		d.saving = false
		if msg.err != nil {
			d.notesErr = "Notes could not be saved."
			d.logger.Error().Err(msg.err).Msg("save notes")
		} else {
			d.notesErr = ""
		}
		if d.dirty {
			d.dirty = false
			return d, d.saveNotes()
		}
		return d, nil

	case spinner.TickMsg:
		if d.inflight == 0 {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case timerTickMsg:
		if msg.gen != d.timerGen || !d.timer.Running() {
			return d, nil
		}
		if d.timer.Tick() {
			d.timesUp = true
			return d, nil
		}
		return d, timerTick(d.timerGen)

	case tea.KeyPressMsg:
		if d.editing {
			return d.updateNotes(msg)
		}
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		return d, d.refresh()
	case "n":
		d.editing = true
		return d, d.notes.Focus()
	case "t":
		d.timer.Toggle()
		d.timesUp = false
		d.timerGen++
		if d.timer.Running() {
			return d, timerTick(d.timerGen)
		}
	case "x":
		d.timer.Reset()
		d.timesUp = false
		d.timerGen++
	case "s":
		d.toggleStudyMode()
	case "a":
		s := analysis.New(d.student)
		return d, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	return d, nil
}

func (d *DashboardScreen) updateNotes(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		d.editing = false
		d.notes.Blur()
		return d, nil
	}

	var cmd tea.Cmd
	d.notes, cmd = d.notes.Update(msg)
	return d, tea.Batch(cmd, d.saveNotes())
}

func (d *DashboardScreen) toggleStudyMode() {
	d.studyMode = !d.studyMode
	if d.studyMode {
		theme.Apply(theme.Dark)
	} else {
		theme.Apply(theme.Default)
	}
	d.spinner.Style = lipgloss.NewStyle().Foreground(theme.Accent)
}

// StudyMode reports whether study mode is on.
func (d *DashboardScreen) StudyMode() bool { return d.studyMode }

func (d *DashboardScreen) View(width, height int) string {
	mainWidth := width
	sidebar := ""
	if !d.studyMode && !layout.IsCompactWidth(width) {
		sidebar = layout.RenderSidebar(navItems, "Dashboard", height)
		mainWidth -= lipgloss.Width(sidebar)
	}

	leftWidth := mainWidth * 3 / 5
	rightWidth := mainWidth - leftWidth - 1

	left := lipgloss.JoinVertical(lipgloss.Left,
		d.viewProfile(leftWidth),
		RenderResources(d.State(), d.spinner.View(), leftWidth),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		d.viewTimer(rightWidth),
		d.viewNotes(rightWidth),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
	}
	return body
}

func (d *DashboardScreen) viewProfile(width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Welcome back, " + d.student.Name))
	b.WriteString("\n")
	info := fmt.Sprintf("Class %s · %s", d.student.Class, d.student.Stream)
	if d.student.Org != "" {
		info += " · " + d.student.Org
	}
	b.WriteString(theme.Subtitle.Render(info))
	b.WriteString("\n\n")

	b.WriteString(components.ProgressBar{
		Label:       "Mastery",
		Percent:     float64(d.report.Mastery) / 100,
		ShowPercent: true,
		Width:       max(width-4, 10),
	}.View())
	b.WriteString("\n\n")

	weak := d.student.WeakTopics()
	if len(weak) == 0 {
		b.WriteString(theme.Correct.Render("No weak areas detected. Great job!"))
	} else {
		chip := lipgloss.NewStyle().Foreground(theme.Secondary)
		chips := make([]string, len(weak))
		for i, w := range weak {
			chips[i] = chip.Render("[" + w + "]")
		}
		b.WriteString(theme.Subtitle.Render("Weak areas: "))
		b.WriteString(strings.Join(chips, " "))
	}

	return layout.Section("Your Progress", b.String(), width)
}

func (d *DashboardScreen) viewTimer(width int) string {
	clock := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(d.timer.Format())
	status := theme.Hint.Render("paused")
	if d.timer.Running() {
		status = lipgloss.NewStyle().Foreground(theme.Success).Render("focusing")
	}
	body := clock + "  " + status
	if d.timesUp {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Time's up! Take a short break.")
	}
	return layout.Section("Focus Timer", body, width)
}

func (d *DashboardScreen) viewNotes(width int) string {
	ta := d.notes
	ta.SetWidth(max(width-4, 10))
	body := ta.View()
	if d.notesErr != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(d.notesErr)
	} else if !d.editing {
		body += "\n" + theme.Hint.Render("Press n to edit. Saved as you type.")
	}
	return layout.Section("My Notes", body, width)
}
