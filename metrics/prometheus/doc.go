// Package prometheus exports jarowinkler comparison metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, _ := jwprom.New(reg)
//	c := jarowinkler.New(jarowinkler.DefaultOptions(), jarowinkler.WithMetricsCollector(mc))
package prometheus
