// Package user provides the User aggregate: the account behind every actor of the
// system (customers sending parcels, couriers delivering them and administrators).
//
// Key business rules:
//   - Email is mandatory, normalized to lower case and unique (uniqueness is enforced by the store)
//   - Role is one of customer, courier or admin
//   - The password hash is never exposed outside persistence and authentication
//   - Inactive users keep their data but cannot be assigned new deliveries
package user
