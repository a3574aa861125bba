package main

import (
	"fmt"

	"github.com/fwojciec/snlchat"
	"github.com/fwojciec/snlchat/yaml"
)

// Run executes the prompts command.
func (c *PromptsCmd) Run(deps *Dependencies) error {
	if c.Intent != "" {
		intent, ok := snlchat.ParseIntent(c.Intent)
		if !ok {
			fmt.Fprintf(deps.Stderr, "error: unknown intent %q (website, thesis, books, posters)\n", c.Intent)
			return snlchat.Errorf(snlchat.EINVALID, "unknown intent %q", c.Intent)
		}
		fmt.Fprintln(deps.Stdout, deps.Templates.Instruction(intent))
		return nil
	}

	data, err := yaml.MarshalTemplates(deps.Templates)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
