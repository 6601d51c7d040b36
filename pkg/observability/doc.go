/*
Package observability exports Prometheus metrics for the Switchyard engines.

Metrics plugs into the fsm lifecycle hooks and into a broker registry through
broker.WithBroadcastObserver, so neither engine depends on Prometheus directly.
*/
package observability
