package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

var replayCmd = &cobra.Command{
	Use:   "replay <algorithm>",
	Short: "Step through an algorithm move by move",
	Long: `Play an algorithm on a cube one move at a time, showing the net after
each move.

Usage:
  cubectl replay "R U R' U'"             # Autoplay at one move per second
  cubectl replay "R U R' U'" --step      # Advance manually with SPACE
  cubectl replay "Rw Uw2" --size 4       # Replay on a 4x4`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var (
	replaySize  int
	replaySpeed float64
	replayStep  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().IntVarP(&replaySize, "size", "n", 3, "Cube size (2-20)")
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	moves, err := nxcube.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return fmt.Errorf("algorithm is empty")
	}

	cube, err := nxcube.New(replaySize)
	if err != nil {
		return err
	}

	model := newReplayModel(cube, moves, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

type replayModel struct {
	cube      *nxcube.Cube
	moves     []nxcube.Move
	moveIndex int
	speed     float64
	stepMode  bool
	paused    bool
	applyErr  error
	quitting  bool
}

func newReplayModel(cube *nxcube.Cube, moves []nxcube.Move, speed float64, stepMode bool) *replayModel {
	return &replayModel{
		cube:     cube,
		moves:    moves,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
}

type replayTickMsg time.Time

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil // Wait for user input in step mode
	}
	return m.scheduleNextMove()
}

func (m *replayModel) scheduleNextMove() tea.Cmd {
	if m.moveIndex >= len(m.moves) {
		return nil
	}
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) advance() {
	if m.moveIndex >= len(m.moves) || m.applyErr != nil {
		return
	}
	if err := m.cube.Apply(m.moves[m.moveIndex]); err != nil {
		m.applyErr = err
		return
	}
	m.moveIndex++
}

func (m *replayModel) reset() {
	fresh, err := nxcube.New(m.cube.Size())
	if err != nil {
		m.applyErr = err
		return
	}
	m.cube = fresh
	m.moveIndex = 0
	m.applyErr = nil
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.advance()
			} else {
				m.paused = !m.paused
				if !m.paused {
					return m, m.scheduleNextMove()
				}
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextMove()
			}

		case "r":
			m.reset()
			if !m.stepMode && !m.paused {
				return m, m.scheduleNextMove()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayTickMsg:
		if !m.paused {
			m.advance()
			return m, m.scheduleNextMove()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Algorithm Replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.moveIndex, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	if !m.stepMode {
		b.WriteString(fmt.Sprintf(" (%.1fx speed)", m.speed))
	}
	b.WriteString("\n\n")

	// Algorithm with the next move highlighted
	var parts []string
	for i, mv := range m.moves {
		notation := mv.Notation()
		if i == m.moveIndex {
			notation = moveStyle.Render(notation)
		}
		parts = append(parts, notation)
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n\n")

	b.WriteString(renderCube(m.cube))
	b.WriteString("\n")

	if m.applyErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.applyErr)))
		b.WriteString("\n")
	} else if m.moveIndex >= len(m.moves) {
		if m.cube.IsSolved() {
			b.WriteString(stepStyle.Render("Done - cube is solved"))
		} else {
			b.WriteString(stepStyle.Render("Done"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/n=next  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
