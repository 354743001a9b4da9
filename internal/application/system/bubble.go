package system

// Bubble is the speech bubble drawn above an NPC
type Bubble struct {
	text    string
	urgent  bool
	visible bool
}

func (b *Bubble) ShowDialog(text string) {
	b.text = text
	b.urgent = false
	b.visible = true
}

func (b *Bubble) ShowUrgentDialog(text string) {
	b.text = text
	b.urgent = true
	b.visible = true
}

func (b *Bubble) HideDialog() {
	b.text = ""
	b.urgent = false
	b.visible = false
}

func (b *Bubble) CurrentText() string { return b.text }

// Urgent reports whether the bubble shows a hint or system message
func (b *Bubble) Urgent() bool { return b.urgent }

func (b *Bubble) Visible() bool { return b.visible }
