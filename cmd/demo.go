// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ava-labs/hashchain/node"
	"github.com/ava-labs/hashchain/utils/logging"

	dto "github.com/prometheus/client_model/go"
)

const (
	CountKey       = "count"
	IntervalKey    = "interval"
	ConcurrencyKey = "concurrency"
)

var errInvalidConcurrency = errors.New("concurrency must be at least 1")

func demoCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "demo",
		Short: "Appends a series of test blocks, then validates the whole chain",
		Args:  cobra.NoArgs,
		RunE:  demoFunc,
	}
	addDemoFlags(c.Flags())
	return c
}

func addDemoFlags(flags *pflag.FlagSet) {
	flags.Uint64(CountKey, 50, "Number of blocks to append")
	flags.Duration(IntervalKey, 100*time.Millisecond, "Minimum time between two appends. 0 appends as fast as possible")
	flags.Int(ConcurrencyKey, 1, "Number of concurrent writers. Above 1, payloads are not appended in order")
}

type demoConfig struct {
	Count       uint64
	Interval    time.Duration
	Concurrency int
}

func parseDemoFlags(flags *pflag.FlagSet) (*demoConfig, error) {
	count, err := flags.GetUint64(CountKey)
	if err != nil {
		return nil, err
	}

	interval, err := flags.GetDuration(IntervalKey)
	if err != nil {
		return nil, err
	}

	concurrency, err := flags.GetInt(ConcurrencyKey)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("%w: %d", errInvalidConcurrency, concurrency)
	}

	return &demoConfig{
		Count:       count,
		Interval:    interval,
		Concurrency: concurrency,
	}, nil
}

func demoFunc(c *cobra.Command, _ []string) error {
	demo, err := parseDemoFlags(c.Flags())
	if err != nil {
		return err
	}

	return runWithNode(c, func(n *node.Node) error {
		n.Log.Info("adding elements to the blockchain",
			zap.Uint64("count", demo.Count),
			zap.Duration("interval", demo.Interval),
			zap.Int("concurrency", demo.Concurrency),
		)
		start := time.Now()
		if err := appendTestData(c.Context(), n, demo); err != nil {
			return err
		}
		n.Log.Info("finished adding elements",
			zap.Duration("duration", time.Since(start)),
		)

		n.Log.Info("testing the chain")
		report, err := n.Chain.Verify()
		if err != nil {
			return err
		}
		logMetrics(n.Log, n.Registry)
		return writeReport(c.OutOrStdout(), report)
	})
}

// appendTestData appends "Test data <i>" for every i below [demo.Count],
// spacing the appends by at least [demo.Interval].
func appendTestData(ctx context.Context, n *node.Node, demo *demoConfig) error {
	limit := rate.Inf
	if demo.Interval > 0 {
		limit = rate.Every(demo.Interval)
	}
	limiter := rate.NewLimiter(limit, 1)

	var next atomic.Uint64
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < demo.Concurrency; w++ {
		eg.Go(func() error {
			for {
				i := next.Add(1) - 1
				if i >= demo.Count {
					return nil
				}
				if err := limiter.Wait(ctx); err != nil {
					return err
				}

				block, err := n.Chain.Append(fmt.Sprintf("Test data %d", i))
				if err != nil {
					return err
				}
				n.Log.Info("added block",
					zap.Uint64("height", block.Height),
					zap.String("hash", block.Hash),
				)
			}
		})
	}
	return eg.Wait()
}

// logMetrics logs the current value of every counter and gauge in
// [gatherer].
func logMetrics(log logging.Logger, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		log.Warn("failed to gather metrics", zap.Error(err))
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value, ok := metricValue(metric)
			if !ok {
				continue
			}

			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			log.Info("metric",
				zap.String("name", family.GetName()),
				zap.Strings("labels", labels),
				zap.Float64("value", value),
			)
		}
	}
}

func metricValue(metric *dto.Metric) (float64, bool) {
	switch {
	case metric.Counter != nil:
		return metric.Counter.GetValue(), true
	case metric.Gauge != nil:
		return metric.Gauge.GetValue(), true
	default:
		return 0, false
	}
}
