package chat

import "github.com/charmbracelet/lipgloss"

// GreetingStyle renders the session banner.
func GreetingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// EchoStyle renders the user's submitted command in the transcript.
func EchoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}

// ReplyStyle renders a successful reply.
func ReplyStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

// ErrorStyle renders a failure reply.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
}
