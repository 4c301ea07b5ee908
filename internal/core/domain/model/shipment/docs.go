// Package shipment contains the Shipment aggregate: one physical dispatch
// event tied to exactly one order, tracked through the
// PENDING -> SHIPPED -> DELIVERED lifecycle with FAILED reachable from any
// non-terminal state. The aggregate owns its append-only tracking history and
// snapshots the origin/destination addresses at creation time so later address
// edits never rewrite shipping history.
package shipment
