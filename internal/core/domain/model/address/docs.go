// Package address contains the ShippingAddress aggregate. An address belongs
// to exactly one user and at most one active address per user may carry the
// default flag; the application layer enforces that invariant transactionally
// by clearing sibling defaults before persisting a default write.
package address
