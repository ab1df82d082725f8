// Package delivery provides domain entities and business logic for managing
// a package shipment from registration to completion. It implements the
// Delivery aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Delivery: The aggregate root that manages identity, dates, and lifecycle
//   - Status: The lifecycle state derived from the delivery's timestamps
//   - Pickup window and day helpers shared by all pickup-related rules
//
// Key business rules:
//   - A delivery may be picked up only between 08:00 and 18:00 local time,
//     boundaries inclusive
//   - A courier may perform at most five pickups per calendar day
//   - Completion requires the end date to be no earlier than the start date
//   - Cancellation is terminal and only applies to unfinished deliveries
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
