// Package services provides domain services for rules that span more than one aggregate or
// belong to none of them.
//
// The package includes:
//   - ShippingCalculator: prices a parcel and estimates its delivery date
//   - ParcelLifecycle: assigns couriers and keeps parcel status in step with delivery reports
//   - AccessPolicy: decides whether an actor may perform an action on a resource
package services
