package main

import (
	snlmcp "github.com/fwojciec/snlchat/mcp"
)

// Run executes the mcp command, serving until stdin closes.
func (c *MCPCmd) Run(deps *Dependencies) error {
	return snlmcp.ServeStdio(snlmcp.NewServer(deps.Answerer, Version))
}
