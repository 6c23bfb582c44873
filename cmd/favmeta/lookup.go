package main

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	o := deps.Service.Lookup(deps.Ctx, c.URL)
	return writeOutcome(deps, o)
}
