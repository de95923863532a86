// Package kernel provides the value objects shared by every aggregate of the
// parcel tracking domain:
//   - UUID: identifiers for users, parcels and deliveries
//   - Address: postal addresses for users and parcel recipients
package kernel
