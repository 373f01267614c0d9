package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ischedule/internal/credentials"
	"ischedule/internal/ui/keys"
	"ischedule/internal/ui/styles"
)

// LoggedIn signals a successful login or registration
type LoggedIn struct{}

// LoginView handles first-run registration and subsequent logins.
type LoginView struct {
	creds  *credentials.Store
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	registering bool
	email       textinput.Model
	password    textinput.Model
	confirm     textinput.Model
	focusIdx    int // email, password, (confirm), submit
	errText     string
}

// NewLoginView creates the view; it switches to registration mode when
// no credential record exists yet.
func NewLoginView(creds *credentials.Store) *LoginView {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 100

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 15
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "Confirm password"
	confirm.CharLimit = 15
	confirm.EchoMode = textinput.EchoPassword

	return &LoginView{
		creds:    creds,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		email:    email,
		password: password,
		confirm:  confirm,
	}
}

func (v *LoginView) Init() tea.Cmd {
	_, err := v.creds.Retrieve()
	v.registering = errors.Is(err, credentials.ErrNoCredentials)
	v.focusIdx = 0
	v.email.Focus()
	return textinput.Blink
}

func (v *LoginView) fieldCount() int {
	if v.registering {
		return 4 // email, password, confirm, submit
	}
	return 3
}

func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return v, tea.Quit

		case key.Matches(msg, v.keys.Tab):
			v.focusIdx = (v.focusIdx + 1) % v.fieldCount()
			v.updateFocus()
			return v, nil

		case msg.String() == "shift+tab":
			v.focusIdx = (v.focusIdx + v.fieldCount() - 1) % v.fieldCount()
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Enter):
			if v.focusIdx < v.fieldCount()-1 {
				v.focusIdx++
				v.updateFocus()
				return v, nil
			}
			return v, v.submit()
		}

		var cmd tea.Cmd
		switch v.focusIdx {
		case 0:
			v.email, cmd = v.email.Update(msg)
		case 1:
			v.password, cmd = v.password.Update(msg)
		case 2:
			if v.registering {
				v.confirm, cmd = v.confirm.Update(msg)
			}
		}
		return v, cmd
	}

	return v, nil
}

func (v *LoginView) updateFocus() {
	v.email.Blur()
	v.password.Blur()
	v.confirm.Blur()
	switch v.focusIdx {
	case 0:
		v.email.Focus()
	case 1:
		v.password.Focus()
	case 2:
		if v.registering {
			v.confirm.Focus()
		}
	}
}

func (v *LoginView) submit() tea.Cmd {
	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()

	if v.registering {
		if !credentials.RegistrationComplete(email, password, v.confirm.Value()) {
			v.errText = "Please fix the highlighted fields"
			return nil
		}
		if err := v.creds.Save(email, password); err != nil {
			v.errText = "Could not save credentials"
			return nil
		}
	} else if !v.creds.Validate(email, password) {
		// No record, corrupt record, and wrong password all look the same.
		v.errText = "Incorrect username or password"
		return nil
	}

	v.errText = ""
	return func() tea.Msg { return LoggedIn{} }
}

func (v *LoginView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 40)

	title := "Welcome Back"
	if v.registering {
		title = "Create Account"
	}

	fieldStyle := func(idx int) lipgloss.Style {
		if v.focusIdx == idx {
			return s.InputFocused
		}
		return s.Input
	}

	rows := []string{
		s.Title.Render(title),
		"",
		v.fieldLabel("Email", credentials.IsValidEmail(strings.TrimSpace(v.email.Value()))),
		fieldStyle(0).Width(inputWidth).Render(v.email.View()),
		"",
		v.fieldLabel("Password", credentials.IsValidPassword(v.password.Value())),
		fieldStyle(1).Width(inputWidth).Render(v.password.View()),
	}

	if v.registering {
		match := v.confirm.Value() != "" &&
			credentials.PasswordsMatch(v.password.Value(), v.confirm.Value())
		rows = append(rows,
			"",
			v.fieldLabel("Confirm", match),
			fieldStyle(2).Width(inputWidth).Render(v.confirm.View()),
		)
	}

	btnStyle := s.Button
	if v.focusIdx == v.fieldCount()-1 {
		btnStyle = s.ButtonFocused
	}
	btnLabel := " Log In "
	if v.registering {
		btnLabel = " Register "
	}
	rows = append(rows, "", btnStyle.Render(btnLabel))

	if v.errText != "" {
		rows = append(rows, "", s.FieldError.Render(v.errText))
	}
	rows = append(rows, "", s.TitleMuted.Render("Tab: next • ↵: submit"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

// fieldLabel renders a label with a validity marker once the user has
// typed something; registration shows live validation, login doesn't.
func (v *LoginView) fieldLabel(label string, valid bool) string {
	if !v.registering {
		return label + ":"
	}
	if valid {
		return label + ": " + lipgloss.NewStyle().Foreground(styles.Current.Success).Render("✓")
	}
	return label + ": " + v.styles.FieldError.Render("✗")
}
