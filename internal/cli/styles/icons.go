package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" //  tag
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github
	IconHeart     = "\uf004" //  heart
	IconGo        = "\ue627" //  go gopher

	IconCheck  = "\uf00c" // check
	IconX      = "\uf00d" // x
	IconInfo   = "\uf05a" // info
	IconConfig = "\ue615" // config
	IconFolder = "\uf07b" // folder
	IconLogs   = "\uf0f6" // file-text

	// Board
	IconNote  = "\uf249" // sticky note
	IconMusic = "\uf001" // music
	IconZoom  = "\uf00e" // search-plus
)
