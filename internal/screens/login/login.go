// Package login is the role picker and sign-up form. Names are looked up
// in the roster; there is no password check.
package login

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teamlowkey/studybuddy/internal/roster"
	"github.com/teamlowkey/studybuddy/internal/router"
	"github.com/teamlowkey/studybuddy/internal/screen"
	"github.com/teamlowkey/studybuddy/internal/ui/components"
	"github.com/teamlowkey/studybuddy/internal/ui/layout"
	"github.com/teamlowkey/studybuddy/internal/ui/theme"
	"github.com/teamlowkey/studybuddy/internal/validation"
)

// Routes builds the screen shown after a successful login.
type Routes struct {
	Student  func(roster.Member) screen.Screen
	Educator func(roster.Member) screen.Screen
	Owner    func(roster.Member) screen.Screen
}

type step int

const (
	stepRole step = iota
	stepName
	stepSignup
)

type roleChosenMsg struct{ role roster.Role }

type signupMsg struct{}

// Sign-up form fields, in tab order.
const (
	fieldName = iota
	fieldEmail
	fieldRole
	fieldClass
	fieldStream
	fieldSubject
	fieldCount
)

var fieldNames = [fieldCount]string{"Name", "Email", "Role", "Class", "Stream", "Subject"}

// LoginScreen handles login and sign-up.
type LoginScreen struct {
	roster *roster.Roster
	routes Routes

	step  step
	menu  components.Menu
	role  roster.Role
	name  components.TextInput
	form  [fieldCount]components.TextInput
	focus int
	flash string
}

var (
	_ screen.Screen          = (*LoginScreen)(nil)
	_ screen.KeyHintProvider = (*LoginScreen)(nil)
	_ screen.InputCapturer   = (*LoginScreen)(nil)
)

func New(r *roster.Roster, routes Routes) *LoginScreen {
	l := &LoginScreen{roster: r, routes: routes}

	choose := func(role roster.Role) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return roleChosenMsg{role: role} }
		}
	}
	l.menu = components.NewMenu([]components.MenuItem{
		{Label: "Login as Student", Hint: "dashboard, AI resources, notes", Action: choose(roster.RoleStudent)},
		{Label: "Login as Educator", Hint: "class performance", Action: choose(roster.RoleEducator)},
		{Label: "Login as Owner", Hint: "members and join requests", Action: choose(roster.RoleOwner)},
		{Label: "Sign up", Hint: "request to join " + r.Org().Name, Action: func() tea.Cmd {
			return func() tea.Msg { return signupMsg{} }
		}},
	})

	l.name = components.NewTextInput("Name", "", 64)
	placeholders := [fieldCount]string{"Your name", "you@example.com", "student or educator", "12", "PCM", "Physics (educators)"}
	for i := range l.form {
		l.form[i] = components.NewTextInput(fieldNames[i], placeholders[i], 64)
	}
	return l
}

func (l *LoginScreen) Init() tea.Cmd { return nil }
func (l *LoginScreen) Title() string { return "Login" }

func (l *LoginScreen) CapturingInput() bool { return l.step != stepRole }

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	switch l.step {
	case stepName:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}, {Key: "Esc", Description: "Back"}}
	case stepSignup:
		return []layout.KeyHint{{Key: "Tab", Description: "Next field"}, {Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}, {Key: "Ctrl+C", Description: "Quit"}}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roleChosenMsg:
		l.role = msg.role
		l.step = stepName
		l.flash = ""
		l.name.Err = ""
		l.name.SetValue(l.suggestedName(msg.role))
		return l, l.name.Focus()

	case signupMsg:
		l.step = stepSignup
		l.flash = ""
		l.focus = fieldName
		return l, l.form[fieldName].Focus()

	case tea.KeyPressMsg:
		switch l.step {
		case stepName:
			return l.updateName(msg)
		case stepSignup:
			return l.updateSignup(msg)
		}
	}

	var cmd tea.Cmd
	switch l.step {
	case stepName:
		l.name, cmd = l.name.Update(msg)
	case stepSignup:
		l.form[l.focus], cmd = l.form[l.focus].Update(msg)
	default:
		l.menu, cmd = l.menu.Update(msg)
	}
	return l, cmd
}

// suggestedName pre-fills the demo account for role.
func (l *LoginScreen) suggestedName(role roster.Role) string {
	if role == roster.RoleOwner {
		return l.roster.Org().Owner
	}
	for _, m := range l.roster.Members() {
		if m.Role == role {
			return m.Name
		}
	}
	return ""
}

func (l *LoginScreen) back() {
	l.step = stepRole
	l.name.Blur()
	for i := range l.form {
		l.form[i].Blur()
	}
}

func (l *LoginScreen) updateName(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		l.back()
		return l, nil
	case "enter":
		next, err := l.login(strings.TrimSpace(l.name.Value()))
		if err != nil {
			l.name.Err = err.Error()
			return l, nil
		}
		return l, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	l.name, cmd = l.name.Update(msg)
	return l, cmd
}

func (l *LoginScreen) login(name string) (screen.Screen, error) {
	org := l.roster.Org()
	if name == "" {
		return nil, errors.New("enter your name")
	}

	if l.role == roster.RoleOwner {
		if !strings.EqualFold(name, org.Owner) {
			return nil, fmt.Errorf("%s is not the owner of %s", name, org.Name)
		}
		return l.routes.Owner(roster.Member{Name: org.Owner, Role: roster.RoleOwner}), nil
	}

	m, ok := l.roster.FindMember(name)
	if !ok || m.Role != l.role {
		return nil, fmt.Errorf("no %s named %s in %s", l.role, name, org.Name)
	}
	if l.role == roster.RoleEducator {
		return l.routes.Educator(m), nil
	}
	return l.routes.Student(m), nil
}

func (l *LoginScreen) updateSignup(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		l.back()
		return l, nil
	case "tab", "down":
		return l, l.focusField((l.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return l, l.focusField((l.focus + fieldCount - 1) % fieldCount)
	case "enter":
		l.submitSignup()
		return l, nil
	}

	var cmd tea.Cmd
	l.form[l.focus], cmd = l.form[l.focus].Update(msg)
	return l, cmd
}

func (l *LoginScreen) focusField(i int) tea.Cmd {
	l.form[l.focus].Blur()
	l.focus = i
	return l.form[i].Focus()
}

func (l *LoginScreen) submitSignup() {
	for i := range l.form {
		l.form[i].Err = ""
	}

	role, err := roster.ParseRole(l.form[fieldRole].Value())
	if err != nil {
		l.form[fieldRole].Err = "choose student or educator"
		return
	}

	p, err := l.roster.RequestJoin(roster.JoinRequest{
		Name:    l.form[fieldName].Value(),
		Email:   l.form[fieldEmail].Value(),
		Role:    role,
		Class:   strings.TrimSpace(l.form[fieldClass].Value()),
		Stream:  strings.TrimSpace(l.form[fieldStream].Value()),
		Subject: strings.TrimSpace(l.form[fieldSubject].Value()),
	})
	if err != nil {
		var ve validation.Errors
		if !errors.As(err, &ve) {
			l.flash = err.Error()
			return
		}
		for _, fe := range ve.Fields {
			for i, name := range fieldNames {
				if name == fe.Field {
					l.form[i].Err = fieldMessage(fe)
				}
			}
		}
		return
	}

	for i := range l.form {
		l.form[i].SetValue("")
	}
	l.back()
	l.flash = fmt.Sprintf("Request sent. %s will review it soon, %s.", l.roster.Org().Owner, p.Name)
}

func fieldMessage(fe validation.FieldError) string {
	switch fe.Tag {
	case "required", "required_if":
		return "required"
	case "email":
		return "not a valid email address"
	case "oneof":
		return "choose student or educator"
	case "min":
		return fmt.Sprintf("at least %s characters", fe.Param)
	case "max":
		return fmt.Sprintf("at most %s characters", fe.Param)
	}
	return fe.String()
}

func (l *LoginScreen) View(width, height int) string {
	var body string
	switch l.step {
	case stepName:
		body = theme.Subtitle.Render("Login as "+l.role.Title()) + "\n\n" + l.name.View()
	case stepSignup:
		fields := make([]string, fieldCount)
		for i := range l.form {
			fields[i] = l.form[i].View()
		}
		submit := components.Button{Label: "Send join request", Focused: true}
		body = theme.Subtitle.Render("Join "+l.roster.Org().Name) + "\n\n" +
			strings.Join(fields, "\n\n") + "\n\n" + submit.View()
	default:
		body = l.menu.View()
		if l.flash != "" {
			body += "\n" + theme.Correct.Render(l.flash)
		}
	}

	card := theme.Card.Width(min(60, width-4)).Render(layout.Wordmark() + "\n\n" + body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
