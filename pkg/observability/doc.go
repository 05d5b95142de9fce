/*
Package observability provides tools for monitoring organisms.

It includes lifecycle hooks fired when an organism is spawned, when a trait is decoded
and when a genome byte is mutated, plus a Prometheus collector that turns those events
into counters.
*/
package observability
