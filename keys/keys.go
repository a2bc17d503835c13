package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyTop
	KeyBottom

	KeyToggle // Toggle the details of the selected launch
	KeyCopy   // Copy the link of the selected launch
	KeySearch // Focus the search box
	KeyEsc    // Clear the search or leave the search box

	KeyHelp
	KeyQuit

	KeySubmitSearch // SubmitSearch is a special keybinding for leaving the search box with the query kept.
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"pgup":   KeyPageUp,
	"ctrl+u": KeyPageUp,
	"pgdown": KeyPageDown,
	"ctrl+d": KeyPageDown,
	"home":   KeyTop,
	"g":      KeyTop,
	"end":    KeyBottom,
	"G":      KeyBottom,
	"enter":  KeyToggle,
	" ":      KeyToggle,
	"y":      KeyCopy,
	"/":      KeySearch,
	"esc":    KeyEsc,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName tot keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyPageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup/^u", "page up"),
	),
	KeyPageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn/^d", "page down"),
	),
	KeyTop: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g/home", "top"),
	),
	KeyBottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G/end", "bottom"),
	),
	KeyToggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("↵/space", "view/hide"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),

	// -- Special keybindings --

	KeySubmitSearch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply search"),
	),
}

// FooterKeyMap adapts the global bindings to help.KeyMap for the footer.
type FooterKeyMap struct{}

// ShortHelp returns the bindings shown in the one-line footer.
func (FooterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyUp],
		GlobalkeyBindings[KeyDown],
		GlobalkeyBindings[KeyToggle],
		GlobalkeyBindings[KeySearch],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

// FullHelp returns the bindings grouped by column.
func (FooterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			GlobalkeyBindings[KeyUp],
			GlobalkeyBindings[KeyDown],
			GlobalkeyBindings[KeyPageUp],
			GlobalkeyBindings[KeyPageDown],
			GlobalkeyBindings[KeyTop],
			GlobalkeyBindings[KeyBottom],
		},
		{
			GlobalkeyBindings[KeyToggle],
			GlobalkeyBindings[KeyCopy],
			GlobalkeyBindings[KeySearch],
			GlobalkeyBindings[KeyEsc],
		},
		{
			GlobalkeyBindings[KeyHelp],
			GlobalkeyBindings[KeyQuit],
		},
	}
}
