package main

import (
	"fmt"

	"github.com/fwojciec/favmeta/i18n"
)

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	if !c.RunAll {
		fmt.Fprintln(deps.Stdout, deps.Localizer.Message(i18n.MsgTryExamples))
		for i, ex := range deps.Examples {
			fmt.Fprintf(deps.Stdout, "  %d. %s  %s\n", i+1, ex.Name, ex.URL)
		}
		return nil
	}

	inputs := make([]string, 0, len(deps.Examples))
	for _, ex := range deps.Examples {
		inputs = append(inputs, ex.URL)
	}

	outcomes := deps.Service.LookupAll(deps.Ctx, inputs, c.Concurrency)

	var failed int
	for i, o := range outcomes {
		if !deps.JSON {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "== %s (%s)\n", deps.Examples[i].Name, deps.Examples[i].URL)
		}
		if err := writeOutcome(deps, o); err != nil {
			failed++
		}
	}

	if failed > 0 {
		err := fmt.Errorf("%d of %d lookups failed", failed, len(outcomes))
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
