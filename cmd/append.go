// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ava-labs/hashchain/node"
)

const JSONKey = "json"

var errInvalidJSON = errors.New("data is not valid JSON")

func appendCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "append <data>",
		Short: "Appends a block holding the given data and prints it",
		Args:  cobra.ExactArgs(1),
		RunE:  appendFunc,
	}
	c.Flags().Bool(JSONKey, false, "Store the data as a JSON value rather than as a string")
	return c
}

func appendFunc(c *cobra.Command, args []string) error {
	isJSON, err := c.Flags().GetBool(JSONKey)
	if err != nil {
		return err
	}

	var data any = args[0]
	if isJSON {
		raw := json.RawMessage(args[0])
		if !json.Valid(raw) {
			return errInvalidJSON
		}
		data = raw
	}

	return runWithNode(c, func(n *node.Node) error {
		block, err := n.Chain.Append(data)
		if err != nil {
			return err
		}
		return writeBlock(c.OutOrStdout(), block)
	})
}
