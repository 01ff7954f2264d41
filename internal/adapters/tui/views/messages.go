package views

// Messages emitted by views for the app to act on.

// AnalyzeRequestMsg asks the app to scan a folder
type AnalyzeRequestMsg struct {
	Path string
}

// OrganizeRequestMsg asks the app to execute the current plan
type OrganizeRequestMsg struct{}

// UndoRequestMsg asks the app to reverse the last organize run
type UndoRequestMsg struct{}

// SwitchToConfirmMsg moves from the analysis browser to the
// organize confirmation
type SwitchToConfirmMsg struct{}

// SwitchToPromptMsg returns to the folder prompt
type SwitchToPromptMsg struct{}
