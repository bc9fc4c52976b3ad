package tui

// Mode determines what the keyboard drives.
type Mode int

const (
	// ModeBrowse navigates the field list.
	ModeBrowse Mode = iota
	// ModeEdit types into the focused field.
	ModeEdit
	// ModeLogo types a logo file path.
	ModeLogo
)

// logoLoadedMsg carries a successfully read logo, encoded as a data URI.
type logoLoadedMsg struct {
	Path string
	Ref  string
}

// logoErrorMsg reports an unreadable logo file. The draft keeps its
// previous logo.
type logoErrorMsg struct {
	Path string
	Err  error
}
