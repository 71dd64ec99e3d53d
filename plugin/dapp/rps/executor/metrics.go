// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	metrics "github.com/rcrowley/go-metrics"
)

// metrics 名字
const (
	MetricStarted  = "rps/started"
	MetricJoined   = "rps/joined"
	MetricResolved = "rps/resolved"
	MetricDraws    = "rps/draws"
	MetricRejected = "rps/rejected"
	MetricPaid     = "rps/paid"
	MetricReveal   = "rps/reveal"
)

type gameMetrics struct {
	started  metrics.Counter
	joined   metrics.Counter
	resolved metrics.Counter
	draws    metrics.Counter
	rejected metrics.Counter
	paid     metrics.Meter
	reveal   metrics.Timer
}

func newGameMetrics(r metrics.Registry) *gameMetrics {
	return &gameMetrics{
		started:  metrics.GetOrRegisterCounter(MetricStarted, r),
		joined:   metrics.GetOrRegisterCounter(MetricJoined, r),
		resolved: metrics.GetOrRegisterCounter(MetricResolved, r),
		draws:    metrics.GetOrRegisterCounter(MetricDraws, r),
		rejected: metrics.GetOrRegisterCounter(MetricRejected, r),
		paid:     metrics.GetOrRegisterMeter(MetricPaid, r),
		reveal:   metrics.GetOrRegisterTimer(MetricReveal, r),
	}
}
