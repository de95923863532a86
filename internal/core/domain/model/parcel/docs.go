// Package parcel provides the Parcel aggregate and its value objects.
//
// A parcel is registered by a sender with a recipient snapshot, physical details and a
// shipping quote. From then on its status moves through
//
//	pending ──> picked_up ──> in_transit ──> out_for_delivery ──> delivered
//	   │
//	   └──> cancelled
//
// driven by the delivery a courier is working on (see services.ParcelLifecycle) or by an
// administrator override. Every status change appends exactly one StatusHistoryEntry; saving a
// parcel without a status change never appends one.
package parcel
