/*
Package observability exposes Prometheus metrics for the transducer engine.

Metrics live in their own registry so several engines (or tests) can coexist in
one process. All recording methods are safe on a nil *Metrics, which lets the
engine record unconditionally.
*/
package observability
