package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/earmark/internal/config"
	"github.com/llehouerou/earmark/internal/device"
	"github.com/llehouerou/earmark/internal/errmsg"
	"github.com/llehouerou/earmark/internal/keymap"
	"github.com/llehouerou/earmark/internal/logger"
	"github.com/llehouerou/earmark/internal/mpris"
	"github.com/llehouerou/earmark/internal/notify"
	"github.com/llehouerou/earmark/internal/playback"
	"github.com/llehouerou/earmark/internal/stderr"
	"github.com/llehouerou/earmark/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	playerBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

type tickMsg time.Time

type logMsg string

type restoredMsg playback.StateRestored

type articlesMsg []store.ArticleInfo

type model struct {
	log        *logger.Logger
	store      *store.Manager
	device     *device.Player
	controller *playback.Controller
	mpris      *mpris.Adapter
	sub        *playback.Subscription

	keys     *keymap.Resolver
	articles []store.ArticleInfo
	cursor   int
	width    int
	height   int
	status   string
	speeds   []float64
	showHelp bool
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	log := logger.New()

	var st *store.Manager
	if cfg.DataDir != "" {
		st, err = store.OpenAt(cfg.DataDir)
	} else {
		st, err = store.Open()
	}
	if err != nil {
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	articles, err := st.ListArticles()
	if err != nil {
		st.Close()
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpArticleList, err))
	}

	dev := device.New(cfg.GetSampleRate())

	var surface playback.ControlSurface = playback.NopSurface{}
	var mprisAdapter *mpris.Adapter
	if cfg.MprisEnabled() {
		if adapter, mprisErr := mpris.New(); mprisErr == nil {
			mprisAdapter = adapter
			surface = adapter
		} else {
			log.Print(errmsg.Format(errmsg.OpSurfaceStart, mprisErr))
		}
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.NotificationsEnabled() {
		if n, notifyErr := notify.New(); notifyErr == nil {
			notifier = n
		}
	}

	controller := playback.New(playback.Options{
		Device:   dev,
		Surface:  surface,
		Store:    st,
		Logger:   log,
		Notifier: notifier,
	})

	return model{
		log:        log,
		store:      st,
		device:     dev,
		controller: controller,
		mpris:      mprisAdapter,
		sub:        controller.Subscribe(),
		keys:       keymap.NewResolver(keymap.All),
		articles:   articles,
		speeds:     cfg.GetSpeeds(),
	}, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.waitForLog(), m.waitForRestore(), waitForStderr())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForLog forwards one controller log line into the program.
func (m model) waitForLog() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-m.log.Lines
		if !ok {
			return nil
		}
		return logMsg(line)
	}
}

// waitForRestore forwards one state-restore event; the whole view is
// rebuilt when it arrives.
func (m model) waitForRestore() tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-m.sub.StateRestored:
			return restoredMsg(e)
		case <-m.sub.Done:
			return nil
		}
	}
}

// waitForStderr forwards one captured audio-library stderr line.
func waitForStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return logMsg(line)
	}
}

func (m model) reloadArticles() tea.Cmd {
	return func() tea.Msg {
		articles, err := m.store.ListArticles()
		if err != nil {
			m.log.Print(errmsg.Format(errmsg.OpArticleList, err))
			return nil
		}
		return articlesMsg(articles)
	}
}

func (m model) teardown() {
	_ = m.controller.Close()
	if m.mpris != nil {
		_ = m.mpris.Close()
	}
	m.device.Close()
	_ = m.store.Close()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionQuit:
			m.teardown()
			return m, tea.Quit

		case keymap.ActionMoveUp:
			if m.cursor > 0 {
				m.cursor--
			}

		case keymap.ActionMoveDown:
			if m.cursor < len(m.articles)-1 {
				m.cursor++
			}

		case keymap.ActionPlaySelected:
			if m.cursor < len(m.articles) {
				m.controller.Send(playback.PlayHandle{Handle: m.articles[m.cursor].Handle})
			}

		case keymap.ActionPlayPause:
			if m.controller.Playing() {
				m.controller.Send(playback.Pause{})
			} else {
				m.controller.Send(playback.Play{})
			}

		case keymap.ActionJumpForward:
			m.controller.Send(playback.JumpForward{})

		case keymap.ActionJumpBackward:
			m.controller.Send(playback.JumpBackward{})

		case keymap.ActionSpeedUp:
			m.cycleSpeed(1)

		case keymap.ActionSpeedDown:
			m.cycleSpeed(-1)

		case keymap.ActionRefresh:
			return m, m.reloadArticles()

		case keymap.ActionHelp:
			m.showHelp = !m.showHelp
		}

	case tickMsg:
		return m, tickCmd()

	case logMsg:
		m.status = string(msg)
		return m, tea.Batch(m.waitForLog(), waitForStderr())

	case restoredMsg:
		return m, m.waitForRestore()

	case articlesMsg:
		m.articles = msg
		if m.cursor >= len(m.articles) {
			m.cursor = max(0, len(m.articles)-1)
		}
	}

	return m, nil
}

// cycleSpeed steps through the configured speed ladder. The new value is
// sent as raw text, the same shape a speed selector would produce.
func (m model) cycleSpeed(step int) {
	if len(m.speeds) == 0 {
		return
	}
	idx := nearestSpeedIndex(m.speeds, m.controller.Rate()) + step
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.speeds)-1 {
		idx = len(m.speeds) - 1
	}
	value := strconv.FormatFloat(m.speeds[idx], 'f', -1, 64)
	m.controller.Send(playback.UpdatePlaybackSpeed{Value: value})
}

func nearestSpeedIndex(speeds []float64, rate float64) int {
	best := 0
	for i, s := range speeds {
		if math.Abs(s-rate) < math.Abs(speeds[best]-rate) {
			best = i
		}
	}
	return best
}

const playerBarHeight = 3 // top border + content + bottom border

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Earmark"))
	b.WriteString("\n")

	listHeight := m.height - playerBarHeight - 2 // header + status line
	if listHeight < 1 {
		listHeight = 1
	}
	if m.showHelp {
		b.WriteString(m.helpView(listHeight))
	} else {
		b.WriteString(m.listView(listHeight))
	}

	b.WriteString(m.playerBarView())
	b.WriteString("\n")
	if m.status == "" {
		b.WriteString(dimStyle.Render("  ? help"))
	} else {
		b.WriteString(statusStyle.Render(truncate(m.status, m.width)))
	}

	return b.String()
}

func (m model) listView(height int) string {
	if len(m.articles) == 0 {
		return dimStyle.Render("  no articles - add some with earmark-ingest") + strings.Repeat("\n", height)
	}

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.articles) {
		end = len(m.articles)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		a := m.articles[i]

		marker := "  "
		if i == m.cursor {
			marker = "▸ "
		}
		if a.Handle == m.controller.LoadedHandle() {
			marker = "♪ "
		}

		meta := fmt.Sprintf("  %s  %s", formatSeconds(a.DurationSecs), humanize.Time(a.AddedAt))
		titleWidth := m.width - runewidth.StringWidth(marker) - runewidth.StringWidth(meta)
		line := marker + truncate(a.Title, titleWidth)

		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line) + dimStyle.Render(meta))
		} else {
			b.WriteString(line + dimStyle.Render(meta))
		}
		b.WriteString("\n")
	}
	for i := end - start; i < height; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

// helpView lists every key binding in place of the article list.
func (m model) helpView(height int) string {
	keyCol := 0
	rows := make([][2]string, 0, len(keymap.All))
	for _, binding := range keymap.All {
		labels := make([]string, 0, len(binding.Keys))
		for _, key := range binding.Keys {
			labels = append(labels, keymap.Label(key))
		}
		keys := strings.Join(labels, "/")
		if w := runewidth.StringWidth(keys); w > keyCol {
			keyCol = w
		}
		rows = append(rows, [2]string{keys, binding.Description})
	}

	descWidth := m.width - keyCol - 4
	var sb strings.Builder
	lines := 0
	for _, row := range rows {
		if lines >= height {
			break
		}
		sb.WriteString("  " + selectedStyle.Render(runewidth.FillRight(row[0], keyCol)) + "  " + truncate(row[1], descWidth))
		sb.WriteString("\n")
		lines++
	}
	for ; lines < height; lines++ {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) playerBarView() string {
	innerWidth := m.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	title := m.controller.LoadedTitle()
	if title == "" {
		return playerBarStyle.Width(innerWidth).Render(dimStyle.Render(" nothing playing"))
	}

	status := "▶"
	if !m.controller.Playing() {
		status = "⏸"
	}

	pos := m.controller.Position()
	dur := m.controller.Duration()
	right := fmt.Sprintf("%s / %s  %gx ", formatSeconds(pos), formatSeconds(dur), m.controller.Rate())

	left := " " + status + "  "
	barWidth := innerWidth/3 - 2
	bar := progressBar(barWidth, pos, dur)

	titleWidth := innerWidth - runewidth.StringWidth(left) - runewidth.StringWidth(bar) - runewidth.StringWidth(right) - 4
	content := left + truncate(title, titleWidth)

	padding := innerWidth - runewidth.StringWidth(content) - runewidth.StringWidth(bar) - runewidth.StringWidth(right) - 2
	if padding < 0 {
		padding = 0
	}
	content += strings.Repeat(" ", padding) + bar + "  " + right

	return playerBarStyle.Width(innerWidth).Render(content)
}

// progressBar renders pos/dur as a fixed-width bar, empty when the
// readouts are not usable.
func progressBar(width int, pos, dur float64) string {
	if width < 2 {
		return ""
	}
	frac := 0.0
	if !math.IsNaN(pos) && !math.IsNaN(dur) && dur > 0 {
		frac = pos / dur
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
	}
	filled := int(frac * float64(width))
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}

func formatSeconds(s float64) string {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return "-:--"
	}
	total := int(s)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "...")
}

func main() {
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "stderr capture unavailable: %v\n", err)
	}
	defer stderr.Stop()

	m, err := initialModel()
	if err != nil {
		stderr.Stop()
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		stderr.Stop()
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
