package main

import (
	"fmt"

	"github.com/fwojciec/pagelink"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if err := deps.Store.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelink.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cleared cached activation")
	return nil
}
