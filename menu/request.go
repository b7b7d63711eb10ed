package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/qtwr/typewright/config"
	"github.com/qtwr/typewright/runner"
	"github.com/qtwr/typewright/source"
)

// request is the resolved generation request assembled from the menu state.
type request struct {
	input source.Input
	opts  runner.Options
}

// buildRequest marshals the menu fields into a source input and quicktype
// options. It validates what the runner cannot: a missing input value is a
// menu-level mistake, reported before any process is spawned.
func buildRequest(fields []field, cfg config.Config) (request, error) {
	var req request
	req.opts = runner.Options{
		Tool:    cfg.Tool,
		Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}

	for _, f := range fields {
		switch f.id {
		case idSourceKind:
			req.input.Kind = sourceKinds[f.selected]
		case idSourceValue:
			req.input.Value = strings.TrimSpace(f.input.Value())
		case idSrcLang:
			req.opts.SrcLang = f.choices[f.selected]
		case idLang:
			req.opts.Lang = f.choices[f.selected]
		case idTopLevel:
			req.opts.TopLevel = strings.TrimSpace(f.input.Value())
		case idJustTypes, idAlphabetize, idAllOptional:
			if f.on {
				req.opts.Flags = append(req.opts.Flags, runner.Flag{Name: f.flagName})
			}
		case idAcronymStyle:
			// The first choice is quicktype's own default; only a
			// deliberate change shows up in the argv.
			if f.selected != 0 {
				req.opts.Flags = append(req.opts.Flags, runner.Flag{
					Name:  f.flagName,
					Value: f.choices[f.selected],
				})
			}
		}
	}

	if req.input.Value == "" {
		return request{}, fmt.Errorf("input is empty: give a %s", req.input.Kind)
	}
	return req, nil
}
