package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/launch"
	"github.com/nikbrunner/tagsearch/internal/model"
	"github.com/nikbrunner/tagsearch/internal/search"
	"github.com/nikbrunner/tagsearch/internal/tui/layout"
	"go.uber.org/zap"
)

// App is the main bubbletea model for the saved search list.
// The controller owns the list state; App owns only what is specific to the
// terminal: inputs, cursor, filter and status message.
type App struct {
	ctrl         *controller.Controller
	launcher     launch.Launcher
	logger       *zap.Logger
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	form   FormState
	filter FilterState
	rows   []Row
	cursor int

	// Selected entry of the actions dialog
	menuCursor int

	// For gg command
	lastKeyWasG bool

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Controller   *controller.Controller
	Launcher     launch.Launcher      // optional, uses launch.System if nil
	Logger       *zap.Logger          // optional, uses a no-op logger if nil
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	var launcher launch.Launcher = launch.System{}
	if params.Launcher != nil {
		launcher = params.Launcher
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := App{
		ctrl:         params.Controller,
		launcher:     launcher,
		logger:       logger,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		form:         NewFormState(layoutCfg),
		filter:       NewFilterState(layoutCfg),
		width:        80,
		height:       24,
	}

	app.syncForm()
	app.refreshRows()
	return app
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// State returns the controller state.
func (a App) State() controller.State {
	return a.ctrl.State()
}

// Rows returns the visible list rows.
func (a App) Rows() []Row {
	return a.rows
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// SelectedTag returns the tag under the cursor, or "" for an empty list.
func (a App) SelectedTag() string {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return ""
	}
	return a.rows[a.cursor].Tag
}

// FilterQuery returns the applied list filter.
func (a App) FilterQuery() string {
	return a.filter.Query
}

// Message returns the status message text.
func (a App) Message() string {
	return a.messageText
}

// MessageType returns the kind of the status message.
func (a App) MessageType() MessageType {
	return a.messageType
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case urlOpenedMsg:
		if msg.err != nil {
			a.setMessage(MessageError, "Could not open search: "+msg.err.Error())
		} else {
			a.setMessage(MessageSuccess, "Opened "+msg.url)
		}
		return a, nil

	case sharedMsg:
		if msg.err != nil {
			a.setMessage(MessageError, "Could not share search: "+msg.err.Error())
		} else {
			a.setMessage(MessageSuccess, "Search copied to clipboard")
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// refreshRows rebuilds the visible rows from the controller tags and the
// applied filter, keeping the cursor in range.
func (a *App) refreshRows() {
	st := a.ctrl.State()

	if a.filter.Query == "" {
		a.rows = make([]Row, len(st.Tags))
		for i, tag := range st.Tags {
			a.rows[i] = Row{Tag: tag}
		}
	} else {
		results := search.FuzzySearchTags(model.SearchesFromMap(st.Searches), a.filter.Query)
		a.rows = make([]Row, len(results))
		for i, r := range results {
			a.rows[i] = Row{Tag: r.Search.Tag, MatchedIndexes: r.MatchedIndexes}
		}
	}

	a.cursor = layout.ClampCursor(a.cursor, len(a.rows))
}

// syncForm copies the controller's field texts and focus into the inputs.
func (a *App) syncForm() {
	st := a.ctrl.State()

	if a.form.QueryInput.Value() != st.QueryText {
		a.form.QueryInput.SetValue(st.QueryText)
	}
	if a.form.TagInput.Value() != st.TagText {
		a.form.TagInput.SetValue(st.TagText)
	}

	switch st.Focus {
	case controller.FieldQuery:
		a.form.QueryInput.Focus()
		a.form.TagInput.Blur()
	case controller.FieldTag:
		a.form.QueryInput.Blur()
		a.form.TagInput.Focus()
	default:
		a.form.QueryInput.Blur()
		a.form.TagInput.Blur()
	}
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}
