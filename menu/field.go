package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/qtwr/typewright/config"
	"github.com/qtwr/typewright/source"
)

// fieldKind selects how a menu row edits and renders.
type fieldKind uint8

const (
	fieldCycle  fieldKind = iota // left/right walks a fixed choice list
	fieldText                    // free text via textinput
	fieldToggle                  // on/off switch
	fieldAction                  // enter fires the run
)

// fieldID names the semantic rows so buildRequest does not depend on ordering.
type fieldID uint8

const (
	idSourceKind fieldID = iota
	idSourceValue
	idSrcLang
	idLang
	idTopLevel
	idJustTypes
	idAlphabetize
	idAllOptional
	idAcronymStyle
	idRun
)

type field struct {
	id    fieldID
	kind  fieldKind
	label string

	choices  []string // fieldCycle
	selected int

	input textinput.Model // fieldText

	on       bool   // fieldToggle
	flagName string // fieldToggle / fieldCycle rows that map to quicktype flags
}

// sourceKinds is the cycle order of the source row. Stdin is CLI-only: the
// TUI owns the terminal, so there is no stream to read.
var sourceKinds = []source.Kind{
	source.KindFile,
	source.KindDir,
	source.KindURL,
	source.KindText,
}

var srcLangs = []string{"json", "schema", "typescript", "graphql", "postman"}

var targetLangs = []string{
	"go", "typescript", "python", "rust", "csharp", "java", "kotlin",
	"swift", "ruby", "dart", "elm", "flow", "objective-c", "javascript",
}

var acronymStyles = []string{"original", "pascal", "camel", "lowerCase"}

// newFields builds the menu rows seeded from cfg. Unknown config values fall
// back to the first choice rather than failing: a stale config file must not
// brick the menu.
func newFields(cfg config.Config) []field {
	srcValue := textinput.New()
	srcValue.Placeholder = "path, URL, or pasted JSON"
	srcValue.CharLimit = 0

	topLevel := textinput.New()
	topLevel.Placeholder = "TopLevel"
	topLevel.SetValue(cfg.TopLevel)

	defaults := flagSet(cfg.Flags)

	fields := []field{
		{id: idSourceKind, kind: fieldCycle, label: "Source", choices: kindNames()},
		{id: idSourceValue, kind: fieldText, label: "Input", input: srcValue},
		{id: idSrcLang, kind: fieldCycle, label: "Source language", choices: srcLangs, selected: indexOf(srcLangs, cfg.SrcLang)},
		{id: idLang, kind: fieldCycle, label: "Target language", choices: targetLangs, selected: indexOf(targetLangs, cfg.Lang)},
		{id: idTopLevel, kind: fieldText, label: "Top-level name", input: topLevel},
		{id: idJustTypes, kind: fieldToggle, label: "Just types", flagName: "just-types", on: hasFlag(defaults, "just-types")},
		{id: idAlphabetize, kind: fieldToggle, label: "Alphabetize properties", flagName: "alphabetize-properties", on: hasFlag(defaults, "alphabetize-properties")},
		{id: idAllOptional, kind: fieldToggle, label: "All properties optional", flagName: "all-properties-optional", on: hasFlag(defaults, "all-properties-optional")},
		{id: idAcronymStyle, kind: fieldCycle, label: "Acronym style", flagName: "acronym-style", choices: acronymStyles, selected: indexOf(acronymStyles, defaults["acronym-style"])},
		{id: idRun, kind: fieldAction, label: "Generate"},
	}
	return fields
}

func kindNames() []string {
	names := make([]string, len(sourceKinds))
	for i, k := range sourceKinds {
		names[i] = k.String()
	}
	return names
}

func indexOf(choices []string, want string) int {
	for i, c := range choices {
		if c == want {
			return i
		}
	}
	return 0
}

// flagSet parses config flag strings ("just-types", "acronym-style=camel")
// into a name → value map. Bare switches map to the empty string.
func flagSet(flags []string) map[string]string {
	set := make(map[string]string, len(flags))
	for _, f := range flags {
		name, value, _ := strings.Cut(f, "=")
		if name == "" {
			continue
		}
		set[name] = value
	}
	return set
}

func hasFlag(set map[string]string, name string) bool {
	_, ok := set[name]
	return ok
}
