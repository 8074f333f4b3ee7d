// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/hashchain/chain"
	"github.com/ava-labs/hashchain/config"
	"github.com/ava-labs/hashchain/node"
	"github.com/ava-labs/hashchain/utils/logging"
	"github.com/ava-labs/hashchain/utils/wrappers"
)

const mainLoggerName = "main"

var errChainInvalid = errors.New("chain failed validation")

// Command returns the root hashchain command. Every flag of the config
// package is available to every subcommand.
func Command() *cobra.Command {
	c := &cobra.Command{
		Use:          config.AppName,
		Short:        "Append-only hash-linked ledger backed by a key-value store",
		SilenceUsage: true,
	}
	config.AddFlags(c.PersistentFlags())
	c.AddCommand(
		appendCommand(),
		getCommand(),
		heightCommand(),
		validateCommand(),
		demoCommand(),
	)
	return c
}

// runWithNode builds the node described by the flags of [c], passes it to
// [f] and shuts it down afterwards.
func runWithNode(c *cobra.Command, f func(n *node.Node) error) error {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return err
	}
	nodeConfig, err := config.GetConfig(v)
	if err != nil {
		return fmt.Errorf("couldn't load node config: %w", err)
	}

	logFactory := logging.NewFactory(nodeConfig.Logging)
	defer logFactory.Close()

	log, err := logFactory.Make(mainLoggerName)
	if err != nil {
		return fmt.Errorf("failed to initialize log: %w", err)
	}

	n, err := node.New(nodeConfig, logFactory, log)
	if err != nil {
		log.Error("failed to initialize node", zap.Error(err))
		return err
	}

	errs := wrappers.Errs{}
	errs.Add(
		f(n),
		n.Shutdown(),
	)
	return errs.Err
}

func parseHeight(arg string) (uint64, error) {
	height, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid height %q: %w", arg, err)
	}
	return height, nil
}

func writeBlock(w io.Writer, block *chain.Block) error {
	blockBytes, err := block.Bytes()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", blockBytes)
	return err
}

// writeReport prints the outcome of a full chain validation and returns
// [errChainInvalid] if any fault was found.
func writeReport(w io.Writer, report *chain.Report) error {
	if report.Valid() {
		_, err := fmt.Fprintf(w, "No errors detected in %d blocks\n", report.Checked)
		return err
	}

	heights := report.Heights()
	if _, err := fmt.Fprintf(w, "Block errors = %d\nBlocks: %v\n", len(heights), heights); err != nil {
		return err
	}
	for _, fault := range report.Faults {
		if _, err := fmt.Fprintf(w, "  #%d: %s\n", fault.Height, fault.Reason); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %d invalid blocks", errChainInvalid, len(heights))
}
