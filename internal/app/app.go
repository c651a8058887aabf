package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/teamlowkey/studybuddy/internal/notes"
	"github.com/teamlowkey/studybuddy/internal/recommend"
	"github.com/teamlowkey/studybuddy/internal/roster"
	"github.com/teamlowkey/studybuddy/internal/router"
	"github.com/teamlowkey/studybuddy/internal/screen"
	"github.com/teamlowkey/studybuddy/internal/screens/dashboard"
	"github.com/teamlowkey/studybuddy/internal/screens/login"
	"github.com/teamlowkey/studybuddy/internal/screens/members"
	"github.com/teamlowkey/studybuddy/internal/screens/welcome"
	"github.com/teamlowkey/studybuddy/internal/ui/layout"
	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

// Options holds the dependencies shared by all screens.
type Options struct {
	Fetcher *recommend.Fetcher
	Notes   *notes.Pad
	Roster  *roster.Roster
	Logger  zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
// Screens run their background work under ctx.
func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Roster == nil {
		opts.Roster = roster.Seed()
	}
	if opts.Notes == nil {
		opts.Notes = notes.NewPad(notes.NewMemoryStorage())
	}

	routes := login.Routes{
		Student: func(m roster.Member) screen.Screen {
			return dashboard.New(ctx, m.Student(opts.Roster.Org()), opts.Fetcher, opts.Notes, opts.Logger)
		},
		Educator: func(m roster.Member) screen.Screen { return members.New(opts.Roster, m) },
		Owner:    func(m roster.Member) screen.Screen { return members.New(opts.Roster, m) },
	}

	start := welcome.New(func() screen.Screen { return login.New(opts.Roster, routes) })
	return AppModel{
		router: router.New(start),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if cmd, ok := m.router.Back(); ok {
				return m, cmd
			}
			if !m.router.Capturing() {
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.frame())
	v.AltScreen = true
	if theme.Active().Name == theme.Dark.Name {
		v.BackgroundColor = theme.Dark.BgCard
	}
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, user := "", ""
	if active != nil {
		title = active.Title()
		if u, ok := active.(screen.UserLabeler); ok {
			user = u.UserLabel()
		}
	}

	header := layout.RenderHeader(title, user, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
		if m.router.Depth() > 1 && !m.router.Capturing() {
			footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error().Err(err).Msg("tui exited with error")
		return err
	}
	return nil
}
