// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hashchain/node"
)

func validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [height]",
		Short: "Validates the whole chain, or only the block at the given height",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateFunc,
	}
}

func validateFunc(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runWithNode(c, func(n *node.Node) error {
			report, err := n.Chain.Verify()
			if err != nil {
				return err
			}
			return writeReport(c.OutOrStdout(), report)
		})
	}

	height, err := parseHeight(args[0])
	if err != nil {
		return err
	}
	return runWithNode(c, func(n *node.Node) error {
		valid, err := n.Chain.ValidateBlock(height)
		if err != nil {
			return err
		}
		if !valid {
			if _, err := fmt.Fprintf(c.OutOrStdout(), "Block #%d is invalid\n", height); err != nil {
				return err
			}
			return fmt.Errorf("%w: block %d", errChainInvalid, height)
		}
		_, err = fmt.Fprintf(c.OutOrStdout(), "Block #%d is valid\n", height)
		return err
	})
}
