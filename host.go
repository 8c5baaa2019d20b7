package inkscript

// Host is the application side of the scripting surface: UI facilities
// and notifications the engine passes guest requests through to. All
// methods are called synchronously on the script's goroutine.
type Host interface {
	// Refresh notifies the host that the working document changed and
	// the current page should be redrawn.
	Refresh()

	// MsgBox presents a message with the given numbered buttons and
	// returns the number of the button chosen.
	MsgBox(msg string, buttons map[int]string) int

	// SaveAs shows a save dialog seeded with the suggested filename.
	// It returns the chosen path, or ok=false if the user cancelled.
	SaveAs(suggested string) (path string, ok bool)

	// OpenFile shows an open dialog restricted to the given glob
	// patterns (all files when empty). It returns the chosen path, or
	// ok=false if the user cancelled.
	OpenFile(filters []string) (path string, ok bool)

	// RegisterMenu adds a script-provided menu entry and returns its
	// id.
	RegisterMenu(entry MenuEntry) int

	// DispatchAction performs a named UI action. An error aborts the
	// calling script.
	DispatchAction(action string, enabled bool) error
}

// MenuEntry is a menu point registered by a script.
type MenuEntry struct {
	Menu        string
	Callback    string
	Accelerator string
}

// NopHost is a Host that does nothing. It is the default for engines
// without a host and keeps them fully testable standalone.
type NopHost struct{}

func (NopHost) Refresh()                          {}
func (NopHost) MsgBox(string, map[int]string) int { return 0 }
func (NopHost) SaveAs(string) (string, bool)      { return "", false }
func (NopHost) OpenFile([]string) (string, bool)  { return "", false }
func (NopHost) RegisterMenu(MenuEntry) int        { return -1 }
func (NopHost) DispatchAction(string, bool) error { return nil }
