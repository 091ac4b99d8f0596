package clicmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwatts/anytype-go/pkg/client"
)

var (
	loginTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	loginHelpStyle  = lipgloss.NewStyle().Faint(true)
)

// codePrompt is a single-field bubbletea form: the numeric code the user
// reads out of the Anytype desktop app after auth.create_challenge. It
// mirrors the small, single-purpose bubbletea model shape of kagent's
// internal/tui chat model, scoped down to one textinput.Model instead of
// a full chat transcript.
type codePrompt struct {
	input textinput.Model
	done  bool
	quit  bool
}

func newCodePrompt() codePrompt {
	ti := textinput.New()
	ti.Placeholder = "4-digit code"
	ti.CharLimit = 8
	ti.Focus()
	return codePrompt{input: ti}
}

func (m codePrompt) Init() tea.Cmd { return textinput.Blink }

func (m codePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m codePrompt) View() string {
	return loginTitleStyle.Render("Anytype login") + "\n\n" +
		"Enter the code shown in the Anytype desktop app:\n\n" +
		m.input.View() + "\n\n" +
		loginHelpStyle.Render("enter to confirm, esc to cancel")
}

// Login runs the full challenge/response authentication lifecycle of
// spec §4.2 against c: it starts a challenge, prompts for the
// out-of-band code with a small bubbletea form, exchanges it for a
// bearer API key while a terminal spinner covers the network
// round-trip, and installs the key on c via SetAPIKey. The caller is
// responsible for persisting the returned key with a credstore.
func Login(ctx context.Context, c *client.Client, out io.Writer) (string, error) {
	ch, err := c.CreateChallenge(ctx)
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(newCodePrompt())
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("login prompt: %w", err)
	}
	prompt := result.(codePrompt)
	if prompt.quit || prompt.input.Value() == "" {
		return "", fmt.Errorf("login cancelled")
	}

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	sp.Suffix = " exchanging code for an API key..."
	sp.Start()
	key, err := c.CreateAPIKey(ctx, ch.ChallengeID, prompt.input.Value())
	sp.Stop()
	if err != nil {
		return "", err
	}

	c.SetAPIKey(key.APIKey)
	fmt.Fprintln(out, "login succeeded")
	return key.APIKey, nil
}
