package store

// Intent is a request to change state. The set of variants is closed: only
// the types in this file implement it, and Dispatch handles each one.
type Intent interface {
	// Name is the intent's string tag, as accepted by DecodeIntent.
	Name() string
	isIntent()
}

// Intent names.
const (
	NameToggleDarkMode = "toggleDarkMode"
	NameShowBanner     = "showBanner"
	NameDismissBanner  = "dismissBanner"
	NameAddTodo        = "addTodo"
	NameToggleTodo     = "toggleTodo"
	NameRemoveTodo     = "removeTodo"
	NameClearTodos     = "clearTodos"
)

// ToggleDarkMode flips the theme.
type ToggleDarkMode struct{}

// ShowBanner displays Message in the banner.
type ShowBanner struct{ Message string }

// DismissBanner hides the banner.
type DismissBanner struct{}

// AddTodo prepends a new unfinished item.
type AddTodo struct{ Title string }

// ToggleTodo flips the done flag of the item with ID.
type ToggleTodo struct{ ID string }

// RemoveTodo deletes the item with ID.
type RemoveTodo struct{ ID string }

// ClearTodos drops every unfinished item and keeps the finished ones.
type ClearTodos struct{}

func (ToggleDarkMode) Name() string { return NameToggleDarkMode }
func (ShowBanner) Name() string     { return NameShowBanner }
func (DismissBanner) Name() string  { return NameDismissBanner }
func (AddTodo) Name() string        { return NameAddTodo }
func (ToggleTodo) Name() string     { return NameToggleTodo }
func (RemoveTodo) Name() string     { return NameRemoveTodo }
func (ClearTodos) Name() string     { return NameClearTodos }

func (ToggleDarkMode) isIntent() {}
func (ShowBanner) isIntent()     {}
func (DismissBanner) isIntent()  {}
func (AddTodo) isIntent()        {}
func (ToggleTodo) isIntent()     {}
func (RemoveTodo) isIntent()     {}
func (ClearTodos) isIntent()     {}
