// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hashchain/node"
)

func heightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "Prints the height of the last block",
		Args:  cobra.NoArgs,
		RunE:  heightFunc,
	}
}

func heightFunc(c *cobra.Command, _ []string) error {
	return runWithNode(c, func(n *node.Node) error {
		height, err := n.Chain.CurrentHeight()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.OutOrStdout(), height)
		return err
	})
}
