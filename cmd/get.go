// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hashchain/node"
)

func getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <height>",
		Short: "Prints the block stored at the given height",
		Args:  cobra.ExactArgs(1),
		RunE:  getFunc,
	}
}

func getFunc(c *cobra.Command, args []string) error {
	height, err := parseHeight(args[0])
	if err != nil {
		return err
	}

	return runWithNode(c, func(n *node.Node) error {
		block, err := n.Chain.GetBlock(height)
		if err != nil {
			return fmt.Errorf("couldn't get block %d: %w", height, err)
		}
		return writeBlock(c.OutOrStdout(), block)
	})
}
