package styles

// Nerd Font icons.
const (
	IconTab      = "\uf2d2" // window
	IconBookmark = "\uf02e" // bookmark
	IconBolt     = "\uf0e7" // action
	IconSearch   = "\uf002" // magnifier
	IconCursor   = "\uf054" // chevron-right

	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github

	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconTrash    = "\uf1f8" // trash
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
)

const (
	cursorSelected = IconCursor + " "
	cursorEmpty    = "  "
)
