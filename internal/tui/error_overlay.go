package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Last sync error\n\n" + m.message + "\n\nc copy   enter / esc close"
	return overlayBoxStyle.Render(content)
}
