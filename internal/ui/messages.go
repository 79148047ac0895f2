package ui

// ActivateTabMsg asks the receiving Tabs to select ID, as if its Tab had
// been clicked.
type ActivateTabMsg struct {
	ID string
}

// ActiveTabChangedMsg is emitted by Tabs.Update after the active tab moved.
// It is not sent for activations that left the value unchanged.
type ActiveTabChangedMsg struct {
	From string
	To   string
}
