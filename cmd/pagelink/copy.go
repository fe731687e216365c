package main

import "fmt"

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	result, err := deps.Copier.Run(deps.Ctx)
	if err != nil {
		return err
	}

	if c.Format == "markdown" && result.Markdown != "" {
		fmt.Fprintln(deps.Stdout, result.Markdown)
	}

	return nil
}
