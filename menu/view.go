package menu

import (
	"strings"

	"github.com/qtwr/typewright/internal/grapheme"
)

const labelWidth = 24

func (m Model) View() string {
	switch m.phase {
	case phaseRunning:
		return m.viewMenu(true)
	case phaseResult:
		return m.viewResult()
	default:
		return m.viewMenu(false)
	}
}

func (m Model) viewMenu(running bool) string {
	st := m.cfg.Style

	var b strings.Builder
	b.WriteString(st.Title.Render("typewright"))
	b.WriteString(st.Help.Render("  quicktype front end"))
	b.WriteString("\n\n")

	for i, f := range m.fieldList {
		b.WriteString(m.renderField(f, i == m.focus && !running))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	switch {
	case running:
		b.WriteString(m.spin.View())
		b.WriteString(st.Label.Render(" running quicktype..."))
	case m.status != "":
		style := st.Help
		if m.statusErr {
			style = st.Error
		}
		b.WriteString(style.Render(m.status))
	default:
		b.WriteString(st.Help.Render("↑/↓ field · ←/→ choice · space toggle · ctrl+r generate · ctrl+c quit"))
	}
	return b.String()
}

func (m Model) renderField(f field, focused bool) string {
	st := m.cfg.Style

	marker := "  "
	labelStyle := st.Label
	if focused {
		marker = st.Focused.Render("> ")
		labelStyle = st.Focused
	}

	label := labelStyle.Render(grapheme.Pad(f.label, labelWidth))

	switch f.kind {
	case fieldCycle:
		value := f.choices[f.selected]
		if focused {
			return marker + label + st.Value.Render("‹ "+value+" ›")
		}
		return marker + label + st.Value.Render(value)

	case fieldText:
		return marker + label + f.input.View()

	case fieldToggle:
		box := "[ ]"
		if f.on {
			box = "[x]"
		}
		if focused {
			return marker + label + st.Value.Render(box)
		}
		return marker + label + st.Disabled.Render(box)

	case fieldAction:
		button := "[ " + f.label + " ]"
		if focused {
			return marker + st.Action.Render(button)
		}
		return marker + st.Disabled.Render(button)
	}
	return marker + label
}
