// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 按配置周期性输出 go-metrics 的统计
package metrics

import (
	"sync"
	"time"

	log15 "github.com/inconshreveable/log15"
	rpslog "github.com/mathograham/RockPaperScissorsGame/common/log"
	"github.com/mathograham/RockPaperScissorsGame/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

//EmitModeLog 输出到日志
const EmitModeLog = "log"

var (
	log = rpslog.New("module", "rps metrics")
)

//StartMetrics 根据配置文件相关参数启动, 返回的函数停止周期输出并输出最后一次
func StartMetrics(cfg *types.Metrics, registry go_metrics.Registry) (stop func()) {
	stop = func() {}
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return stop
	}
	if registry == nil {
		registry = go_metrics.DefaultRegistry
	}

	switch cfg.DataEmitMode {
	case EmitModeLog:
		duration := time.Duration(cfg.Duration) * time.Second
		if duration <= 0 {
			duration = time.Minute
		}
		log.Info("StartMetrics with log", "duration", duration)
		quit := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			ticker := time.NewTicker(duration)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					Emit(registry, log)
				case <-quit:
					return
				}
			}
		}()
		var once sync.Once
		return func() {
			once.Do(func() {
				close(quit)
				<-done
				Emit(registry, log)
			})
		}
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
		return stop
	}
}

//Emit 把 registry 中的所有指标写入日志
func Emit(registry go_metrics.Registry, logger log15.Logger) {
	registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			logger.Info("counter", "name", name, "count", m.Count())
		case go_metrics.Gauge:
			logger.Info("gauge", "name", name, "value", m.Value())
		case go_metrics.GaugeFloat64:
			logger.Info("gauge", "name", name, "value", m.Value())
		case go_metrics.Meter:
			s := m.Snapshot()
			logger.Info("meter", "name", name, "count", s.Count(), "rate1", s.Rate1(), "mean", s.RateMean())
		case go_metrics.Histogram:
			s := m.Snapshot()
			ps := s.Percentiles([]float64{0.5, 0.99})
			logger.Info("histogram", "name", name, "count", s.Count(), "min", s.Min(), "max", s.Max(), "p50", ps[0], "p99", ps[1])
		case go_metrics.Timer:
			s := m.Snapshot()
			ps := s.Percentiles([]float64{0.5, 0.99})
			logger.Info("timer", "name", name, "count", s.Count(), "mean", time.Duration(s.Mean()), "p50", time.Duration(ps[0]), "p99", time.Duration(ps[1]))
		}
	})
}
