package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/browser"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/config"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/dates"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/facts"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/sample"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/update"
)

// galleryState tracks where the gallery is in its fetch cycle. A fetch
// can only start from a non-loading state, which is what disables the
// triggers while one is in flight.
type galleryState int

const (
	stateIdle galleryState = iota
	stateLoading
	stateRendered
	stateEmpty
	stateFailed
)

type mode int

const (
	modeHome mode = iota
	modeGallery
	modeForm
	modeModal
	modeHelp
)

type App struct {
	cfg    *config.Config
	source apod.Source
	log    *zap.Logger
	rng    *rand.Rand

	records []apod.Record
	cursor  int
	state   galleryState
	mode    mode

	// current is the range of the gallery on screen, pending the range
	// of the in-flight fetch.
	current apod.DateRange
	pending apod.DateRange
	err     error

	width  int
	height int

	// Sub-components
	spinner spinner.Model
	form    rangeForm
	modal   modal

	// State
	version    string
	sourceName string
	fact       string
	headlines  []facts.Headline
	newVersion string
	returnMode mode
	flashErr   error
	initial    *apod.DateRange
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg     *config.Config
	Source  apod.Source
	Log     *zap.Logger
	Version string

	// Rand drives sampling and the fact strip. Defaults to a
	// time-seeded source.
	Rand *rand.Rand

	// Initial, when set, skips the home screen and fetches this range
	// right away.
	Initial *apod.DateRange
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var sourceName string
	switch opts.Source.(type) {
	case *apod.Client:
		sourceName = "api.nasa.gov"
	case *apod.Archive:
		sourceName = "bundled archive"
	}

	return &App{
		cfg:        opts.Cfg,
		source:     opts.Source,
		log:        log,
		rng:        rng,
		spinner:    sp,
		form:       newRangeForm(),
		version:    opts.Version,
		sourceName: sourceName,
		fact:       facts.Random(rng),
		mode:       modeHome,
		initial:    opts.Initial,
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.headlinesCmd(), a.checkUpdateCmd()}
	if a.initial != nil {
		cmds = append(cmds, a.beginFetch(*a.initial))
	}
	return tea.Batch(cmds...)
}

// beginFetch starts a fetch for r unless one is already running. It
// captures the range into the command closure so the reply can be
// labeled without racing later edits.
func (a *App) beginFetch(r apod.DateRange) tea.Cmd {
	if a.state == stateLoading {
		return nil
	}
	r = r.Normalize()

	a.state = stateLoading
	a.pending = r
	a.err = nil
	a.mode = modeGallery
	a.fact = facts.Random(a.rng)
	a.log.Info("fetching gallery", zap.String("range", r.Label()), zap.String("source", a.sourceName))

	return tea.Batch(a.fetchCmd(r), a.spinner.Tick)
}

func (a *App) fetchCmd(r apod.DateRange) tea.Cmd {
	src := a.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		records, err := src.Fetch(ctx, r)
		return recordsMsg{records: records, reqRange: r, err: err}
	}
}

func (a *App) headlinesCmd() tea.Cmd {
	if a.cfg == nil || a.cfg.FactsFeed == "" {
		return nil
	}
	feedURL := a.cfg.FactsFeed
	log := a.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		headlines, err := facts.NewFetcher().Headlines(ctx, feedURL, 3)
		if err != nil {
			log.Debug("headlines fetch failed", zap.Error(err))
			return headlinesMsg{}
		}
		return headlinesMsg{headlines: headlines}
	}
}

func (a *App) checkUpdateCmd() tea.Cmd {
	version := a.version
	return func() tea.Msg {
		result := update.Check(context.Background(), version)
		return updateMsg{result: result}
	}
}

func openBrowserCmd(rawURL string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{err: browser.Open(rawURL)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.flashErr = nil
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case recordsMsg:
		return a.handleRecords(msg)

	case headlinesMsg:
		a.headlines = msg.headlines
		return a, nil

	case updateMsg:
		if msg.result != nil {
			a.newVersion = msg.result.LatestVersion
		}
		return a, nil

	case openedMsg:
		if msg.err != nil {
			a.log.Warn("browser launch failed", zap.Error(msg.err))
			a.flashErr = msg.err
		}
		return a, nil

	case spinner.TickMsg:
		if a.state == stateLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleRecords(msg recordsMsg) (tea.Model, tea.Cmd) {
	a.current = msg.reqRange

	if msg.err != nil {
		a.state = stateFailed
		a.err = msg.err
		a.records = nil
		a.cursor = 0
		a.log.Error("gallery fetch failed", zap.String("range", msg.reqRange.Label()), zap.Error(msg.err))
		return a, nil
	}

	a.records = sample.Records(a.rng, msg.records, sample.DefaultBound)
	a.cursor = 0
	if len(a.records) == 0 {
		a.state = stateEmpty
	} else {
		a.state = stateRendered
	}
	a.log.Info("gallery loaded",
		zap.Int("fetched", len(msg.records)),
		zap.Int("shown", len(a.records)),
		zap.String("range", msg.reqRange.Label()))
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeForm:
		return a.handleFormKey(msg)
	case modeModal:
		return a.handleModalKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = a.returnMode
		}
		return a, nil
	}

	return a.handleGalleryKey(msg)
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		return a, a.beginFetch(apod.DateRange{})
	case "f":
		a.openForm()
		return a, nil
	case "?":
		a.returnMode = modeHome
		a.mode = modeHelp
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := galleryColumns(a.width)

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.mode = modeHome
		return a, nil
	case "h", "left":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "l", "right":
		if a.cursor < len(a.records)-1 {
			a.cursor++
		}
		return a, nil
	case "j", "down":
		if a.cursor+cols < len(a.records) {
			a.cursor += cols
		}
		return a, nil
	case "k", "up":
		if a.cursor-cols >= 0 {
			a.cursor -= cols
		}
		return a, nil
	case "enter", " ":
		if a.cursor < len(a.records) {
			if a.modal.Open(a.records[a.cursor]) {
				a.mode = modeModal
			}
		}
		return a, nil
	case "o":
		if a.cursor < len(a.records) {
			link := bestLink(a.records[a.cursor])
			if link == "" {
				a.flashErr = errors.New("this record has no link to open")
				return a, nil
			}
			return a, openBrowserCmd(link)
		}
		return a, nil
	case "r":
		return a, a.beginFetch(a.current)
	case "f":
		a.openForm()
		return a, nil
	case "?":
		a.returnMode = modeGallery
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		a.modal.Close()
		a.mode = modeGallery
		return a, nil
	case "j", "down":
		a.modal.scrollBy(1)
		return a, nil
	case "k", "up":
		a.modal.scrollBy(-1)
		return a, nil
	case "o":
		return a, openBrowserCmd(a.modal.url)
	}
	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = a.returnMode
		return a, nil
	case "tab", "shift+tab", "down", "up":
		a.form.focusNext()
		return a, nil
	case "enter":
		if cmd := a.beginFetch(a.form.Range()); cmd != nil {
			return a, cmd
		}
		return a, nil
	}

	return a, a.form.update(msg)
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	switch a.mode {
	case modeModal:
		if !a.modal.box.contains(msg.X, msg.Y) {
			a.modal.Close()
			a.mode = modeGallery
		}
	case modeGallery:
		if i := a.cardAt(msg.X, msg.Y); i >= 0 {
			a.cursor = i
			if a.modal.Open(a.records[i]) {
				a.mode = modeModal
			}
		}
	}
	return a, nil
}

// cardAt maps a click position to a record index using the same
// geometry renderGallery draws with. Returns -1 on a miss.
func (a *App) cardAt(x, y int) int {
	if a.state != stateRendered || len(a.records) == 0 {
		return -1
	}

	y -= 3 // header, info line, fact line
	if y < 0 || y >= a.galleryHeight() {
		return -1
	}

	cols := galleryColumns(a.width)
	cardWidth := a.width / cols
	if cardWidth <= 0 {
		return -1
	}
	col := x / cardWidth
	if col >= cols {
		return -1
	}

	visible := a.galleryHeight() / cardTotalHeight
	if visible < 1 {
		visible = 1
	}
	rowOffset := y / cardTotalHeight
	if rowOffset >= visible {
		return -1
	}

	rows := (len(a.records) + cols - 1) / cols
	row := galleryScroll(rows, a.cursor/cols, visible) + rowOffset
	if row >= rows {
		return -1
	}

	i := row*cols + col
	if i >= len(a.records) {
		return -1
	}
	return i
}

func (a *App) openForm() {
	a.returnMode = a.mode

	var start, end string
	if a.current.Start != nil {
		start = dates.FormatYMD(*a.current.Start)
	}
	if a.current.End != nil {
		end = dates.FormatYMD(*a.current.End)
	}
	a.form.setValues(start, end)
	a.mode = modeForm
}

func bestLink(rec apod.Record) string {
	if u := rec.ImageURL(); u != "" {
		return u
	}
	return rec.URL
}

// failureMessage translates a fetch error into something a person can
// act on. The raw error goes to the log, not the screen.
func failureMessage(err error) string {
	var status *apod.StatusError
	var syntax *json.SyntaxError
	var unmarshal *json.UnmarshalTypeError
	var urlErr *url.Error

	switch {
	case errors.As(err, &status):
		if status.Code == 403 || status.Code == 429 {
			return "The NASA API rejected the key or rate limit. Check your api_key."
		}
		return fmt.Sprintf("The NASA API refused the request (%s).", status.Status)
	case errors.As(err, &syntax), errors.As(err, &unmarshal):
		return "Couldn't read the response from the archive. Try again."
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out. Check your connection and try again."
	case errors.As(err, &urlErr):
		return "Couldn't reach the archive. Check your connection and try again."
	default:
		return "Something went wrong while fetching pictures. Try again."
	}
}

func (a *App) infoLine() string {
	switch a.state {
	case stateLoading:
		return a.spinner.View() + " Contacting the archive..."
	case stateRendered:
		return fmt.Sprintf("Showing %d images from %s", len(a.records), a.current.Label())
	case stateEmpty:
		return fmt.Sprintf("No images found for %s.", a.current.Label())
	case stateFailed:
		return failStyle.Render(failureMessage(a.err))
	default:
		return "Press r to load the latest gallery."
	}
}

func (a *App) galleryContent(height int) string {
	switch a.state {
	case stateRendered:
		return renderGallery(a.records, a.cursor, a.width, height)
	case stateLoading:
		return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center,
			placeholderStyle.Render("Fetching pictures from the cosmos..."))
	case stateEmpty:
		return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center,
			placeholderStyle.Render("Try a wider date range."))
	case stateFailed:
		return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center,
			placeholderStyle.Render("Press r to retry."))
	default:
		return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center,
			placeholderStyle.Render("Press r to load the latest gallery, f to pick a range."))
	}
}

// galleryHeight is the rows left for the card grid once the header,
// info line, fact line and status bar are taken out.
func (a *App) galleryHeight() int {
	h := a.height - 4
	if h < cardTotalHeight {
		h = cardTotalHeight
	}
	return h
}

func (a *App) statusLeft() string {
	if a.flashErr != nil {
		// Browser errors echo the record's URL, so scrub them too.
		return " " + failStyle.Render(truncateStr(sanitize(a.flashErr.Error()), a.width/2))
	}
	return fmt.Sprintf(" %d pictures · %s", len(a.records), a.sourceName)
}

func (a *App) withStatusBar(content, hints string) string {
	bar := renderStatusBar(a.statusLeft(), hints, a.width)
	body := lipgloss.NewStyle().Height(a.height - 1).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorPrimary).Render("  space-explorer")
	}

	switch a.mode {
	case modeHome:
		home := renderHomeScreen(a.width, a.height-1, a.fact, a.headlines, a.newVersion)
		return a.withStatusBar(home, "r load gallery  f date range  ? help  q quit")

	case modeHelp:
		return a.withStatusBar(a.renderHelp(), "? close  q quit")

	case modeForm:
		form := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, a.form.view())
		return a.withStatusBar(form, "enter fetch  tab switch  esc cancel")

	case modeModal:
		return a.withStatusBar(a.modal.View(a.width, a.height-1), "j/k scroll  o open  esc close")
	}

	// Gallery chrome: header, info line, fact line, grid, status bar.
	headerLeft := headerStyle.Render("space-explorer")
	headerRight := headerDateStyle.Render(time.Now().Format("Jan 2, 2006"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight) - 1
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	info := infoLineStyle.Render(a.infoLine())

	factLine := ""
	if a.state == stateLoading || a.state == stateRendered {
		factLine = factStyle.Render(truncateStr("Did you know? "+a.fact, a.width-2))
	}

	contentHeight := a.galleryHeight()
	content := lipgloss.NewStyle().Height(contentHeight).Render(a.galleryContent(contentHeight))

	hints := "enter details  o open  f range  r refresh  ? help  q quit"
	status := renderStatusBar(a.statusLeft(), hints, a.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, info, factLine, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("space-explorer")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Gallery") + "\n" +
		"  h/j/k/l, arrows   Move between cards\n" +
		"  enter, space      Show picture details\n" +
		"  o                 Open picture in browser\n" +
		"  r                 Fetch again\n" +
		"  f                 Pick a date range\n\n" +
		dim.Render("Details") + "\n" +
		"  j/k               Scroll the explanation\n" +
		"  o                 Open full-size image\n" +
		"  esc, click out    Close\n\n" +
		dim.Render("General") + "\n" +
		"  esc               Back to home\n" +
		"  ?                 Toggle this help\n" +
		"  q, ctrl+c         Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
