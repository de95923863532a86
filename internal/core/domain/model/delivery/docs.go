// Package delivery provides the Delivery aggregate: one courier's assignment to carry one parcel.
//
// Status flow:
//
//	assigned ──> picked_up ──> in_transit ──> delivered
//	                               │
//	                               └──> failed ──> (retry) ... ──> returned
//
// A failed update increments the attempt counter. Once MaxAttempts failures have been
// recorded, the next failed update returns the parcel instead. Delivered and returned are final.
package delivery
