/*
Package observability provides Prometheus instrumentation for the router.

Metrics are packaged as domain.RoutingHooks so the core stays free of any
metrics dependency; hosts that want them wire the hooks in at construction:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	router := switchboard.New(registry, store, switchboard.WithHooks(metrics.Hooks()))
*/
package observability
