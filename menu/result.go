package menu

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/qtwr/typewright/highlight"
)

// langExt maps target languages to output file extensions for saving.
var langExt = map[string]string{
	"go": "go", "typescript": "ts", "python": "py", "rust": "rs",
	"csharp": "cs", "java": "java", "kotlin": "kt", "swift": "swift",
	"ruby": "rb", "dart": "dart", "elm": "elm", "flow": "js",
	"objective-c": "m", "javascript": "js",
}

// highlightable reports whether the JS/TS highlighter understands the
// target language well enough to color it. Other outputs render plain.
func highlightable(lang string) bool {
	switch lang {
	case "typescript", "javascript", "flow":
		return true
	}
	return false
}

func (m Model) currentLang() string {
	for _, f := range m.fieldList {
		if f.id == idLang {
			return f.choices[f.selected]
		}
	}
	return ""
}

// rebuildResultView sizes the popup viewport for the current terminal and
// refills its content. Called on resize and whenever a run completes.
func (m *Model) rebuildResultView() {
	w := m.width - 8
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	h := m.height - 8
	if h < 5 {
		h = 5
	}

	m.vp.Width = w
	m.vp.Height = h
	m.vp.SetContent(m.resultContent())
	m.vp.GotoTop()
}

func (m Model) resultContent() string {
	st := m.cfg.Style

	if m.runErr != nil {
		var b strings.Builder
		b.WriteString(st.Error.Render("quicktype failed: " + m.runErr.Error()))
		if out := strings.TrimSpace(m.result.Output); out != "" {
			b.WriteString("\n\n")
			b.WriteString(out)
		}
		return b.String()
	}

	out := strings.TrimRight(m.result.Output, "\n")
	if !highlightable(m.currentLang()) {
		return out
	}
	return highlight.New(st.Code).Render(out)
}

func (m Model) viewResult() string {
	st := m.cfg.Style

	title := st.PopupTitle.Render("Generated " + m.currentLang())
	if m.runErr != nil {
		title = st.Error.Render("Error")
	}

	help := "↑/↓ scroll · s save · esc back · q quit"
	if m.runErr != nil {
		help = "esc back · q quit"
	}

	var status string
	if m.status != "" {
		statusStyle := st.Help
		if m.statusErr {
			statusStyle = st.Error
		}
		status = "\n" + statusStyle.Render(m.status)
	}

	box := st.PopupBorder.Render(
		title + "\n" + m.vp.View() + "\n" + st.Help.Render(help) + status,
	)

	base := m.viewMenu(false)
	x := (m.width - lipgloss.Width(box)) / 2
	y := (m.height - lipgloss.Height(box)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlay.Composite(box, base, overlay.Left, overlay.Top, x, y)
}

// saveResult writes the raw tool output next to the working directory using
// the target language's conventional extension.
func (m *Model) saveResult() {
	if m.runErr != nil || strings.TrimSpace(m.result.Output) == "" {
		m.setStatus("nothing to save", true)
		return
	}

	ext := langExt[m.currentLang()]
	if ext == "" {
		ext = "txt"
	}
	name := fmt.Sprintf("typewright-output.%s", ext)
	if err := os.WriteFile(name, []byte(m.result.Output), 0o644); err != nil {
		m.setStatus("save failed: "+err.Error(), true)
		return
	}
	m.setStatus("saved to "+name, false)
}
