// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/hashchain/utils/wrappers"
)

const namespace = "chain"

type metrics struct {
	appended       prometheus.Counter
	height         prometheus.Gauge
	validations    prometheus.Counter
	invalidBlocks  prometheus.Counter
	appendDuration prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		appended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appended",
			Help:      "number of blocks appended",
		}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "height",
			Help:      "height of the last appended block",
		}),
		validations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations",
			Help:      "number of full chain validations",
		}),
		invalidBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_blocks",
			Help:      "number of invalid heights reported by full chain validations",
		}),
		appendDuration: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "append_duration",
			Help:      "time spent appending blocks (ns)",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.appended),
		registerer.Register(m.height),
		registerer.Register(m.validations),
		registerer.Register(m.invalidBlocks),
		registerer.Register(m.appendDuration),
	)
	return m, errs.Err
}
