package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/levnet/pkg/network"
	"github.com/matzehuels/levnet/pkg/pipeline"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	listErrStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// ExploreModel - Interactive network browser
// =============================================================================

// friendRow is one selectable friend and the size of its own friend set.
type friendRow struct {
	Word    string
	Friends int
}

// ExploreModel is the bubbletea model for walking a friend network one hop
// at a time. Enter moves to the selected friend; backspace goes back.
type ExploreModel struct {
	Source  network.Source
	Center  string
	History []string
	Rows    []friendRow
	Cursor  int
	Height  int
	Offset  int
	Err     error
}

// NewExploreModel creates a model centered on seed.
func NewExploreModel(src network.Source, seed string) ExploreModel {
	m := ExploreModel{Source: src, Height: 15}
	return m.recenter(seed)
}

// recenter loads the friends of word and resets the cursor.
func (m ExploreModel) recenter(word string) ExploreModel {
	m.Center = word
	m.Cursor, m.Offset = 0, 0
	m.Rows, m.Err = nil, nil

	set, err := m.Source.Neighbors(word)
	if err != nil {
		m.Err = err
		return m
	}
	for _, f := range set.Sorted() {
		row := friendRow{Word: f}
		if ff, err := m.Source.Neighbors(f); err == nil {
			row.Friends = ff.Len()
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", "right", "l":
			if len(m.Rows) == 0 {
				return m, nil
			}
			m.History = append(m.History, m.Center)
			return m.recenter(m.Rows[m.Cursor].Word), nil
		case "backspace", "left", "h":
			if n := len(m.History); n > 0 {
				prev := m.History[n-1]
				m.History = m.History[:n-1]
				return m.recenter(prev), nil
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Friends of " + m.Center))
	b.WriteString("\n")
	if len(m.History) > 0 {
		b.WriteString(listDimStyle.Render(strings.Join(m.History, " → ") + " → " + m.Center))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ visit  ⌫ back  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(listErrStyle.Render(m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  no friends"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		r := m.Rows[i]
		rows = append(rows, []string{cursor, r.Word, fmt.Sprint(r.Friends)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Word", "Friends").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor
			lonely := m.Rows[actualIdx].Friends <= 1

			base := lipgloss.NewStyle()
			switch {
			case isCurrent:
				return base.Foreground(colorGreen).Bold(true)
			case lonely:
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		wordlist string
		noCache  bool
		direct   bool
	)

	cmd := &cobra.Command{
		Use:   "explore <word>",
		Short: "Browse a word's network interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			applyFlagOverrides(cmd, &opts, wordlist, 0, 0)
			opts.Direct = direct
			return c.runExplore(cmd.Context(), args[0], opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", pipeline.DefaultWordlist, "word list file, one word per line")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&direct, "direct", false, "compute friends on demand instead of indexing the word list")

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, seed string, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Seed = seed
	if err := opts.ValidateForExpand(); err != nil {
		return err
	}
	words, err := runner.LoadWords(ctx, opts)
	if err != nil {
		return err
	}
	opts.Words = words

	var src network.Source = network.ComputedSource{Words: words}
	if !opts.Direct {
		spinner := newSpinner(ctx, fmt.Sprintf("Indexing %d words...", len(words)))
		spinner.Start()
		adj, err := runner.Adjacency(ctx, opts)
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("index: %w", err)
		}
		src = network.CachedSource{Adjacency: adj}
	}

	p := tea.NewProgram(NewExploreModel(src, seed), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
