package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/engine"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
)

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	user       state.User
	tasks      []state.Task
	challenges []state.Challenge

	selected int

	lastLog string
	loading bool
}

type loadedMsg struct {
	user       state.User
	tasks      []state.Task
	challenges []state.Challenge
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			user:       m.svc.UserProfile(),
			tasks:      m.svc.Tasks(),
			challenges: m.svc.Challenges(),
		}
	}
}

func (m dashModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.user = msg.user
		m.tasks = msg.tasks
		m.challenges = msg.challenges
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.AlreadyCompleted {
			m.lastLog = "Already done."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed: +%d XP +%d coins (level %d → %d)",
			msg.res.XPAwarded, msg.res.CoinsAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		if len(msg.res.ChallengesCompleted) > 0 {
			m.lastLog += " | challenge done: " + strings.Join(msg.res.ChallengesCompleted, ", ")
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.taskRows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			rows := m.taskRows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			t := rows[m.selected]
			if t.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = "Completing " + t.Title + "…"
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

// taskRows orders open tasks first (due soonest on top), done tasks after.
func (m dashModel) taskRows() []state.Task {
	rows := append([]state.Task(nil), m.tasks...)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Completed != rows[j].Completed {
			return !rows[i].Completed
		}
		if !rows[i].Deadline.Equal(rows[j].Deadline) {
			return rows[i].Deadline.Before(rows[j].Deadline)
		}
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows
}

func (m dashModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashModel) renderHeader() string {
	if m.loading {
		return "TaskHero — loading…"
	}
	bar := progressBar(m.user.XP, engine.XPForNextLevel(m.user.Level), 30)
	return fmt.Sprintf("TaskHero | %s | Level %d | XP %d/%d %s | Coins %d | Streak %d",
		m.user.Username, m.user.Level, m.user.XP, engine.XPForNextLevel(m.user.Level), bar, m.user.Coins, m.user.StreakDays)
}

func (m dashModel) renderSidebar() string {
	lines := []string{"Challenges"}
	if len(m.challenges) == 0 {
		lines = append(lines, "(none)")
	}
	for _, c := range m.challenges {
		mark := " "
		if c.Completed {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s %d/%d", mark, c.Title, c.CurrentCount, c.TargetCount))
	}
	lines = append(lines, "")
	lines = append(lines, "Badges")
	if len(m.user.Rewards) == 0 {
		lines = append(lines, "(none yet)")
	}
	for _, r := range m.user.Rewards {
		lines = append(lines, "- "+r.Name)
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	rows := m.taskRows()
	out := []string{"Tasks"}
	if len(rows) == 0 {
		out = append(out, "(empty — add one with `hero add`)")
		return strings.Join(out, "\n")
	}
	for i, t := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s (%s, due %s)", cursor, mark, t.Title, t.Difficulty, t.Deadline.Format("Jan 02")))
	}
	return strings.Join(out, "\n")
}

func (m dashModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
