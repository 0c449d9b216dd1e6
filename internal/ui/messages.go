package ui

// pagerMsg reports that the pager exited
type pagerMsg struct {
	what string // "help" or "results"
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
