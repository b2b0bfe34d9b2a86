package main

import (
	"fmt"

	"github.com/ogniew/pith"
	"github.com/ogniew/pith/etree"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	raw, err := loadSource(deps.Ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	res, err := deps.Inspector.Extract(raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	dumpFn := etree.Dump
	if c.Candidate {
		dumpFn = etree.DumpCandidate
	}
	dump, err := dumpFn(res)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, dump)
	return nil
}
