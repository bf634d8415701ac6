package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGo        = "" //  go gopher
	IconGithub    = "" //  github
	IconHeart     = "" //  heart

	IconWorkspace = "" // clone/stack
	IconWindow    = "" // window
	IconFloating  = "" // copy/overlap
	IconUrgent    = "" // warning
	IconClock     = "" // clock
	IconSnapshot  = "" // floppy
	IconConfig    = "" // config
	IconDatabase  = "" // database

	IconCursor = "" // chevron-right
	IconCheck  = "" // check
	IconX      = "" // x
)
