// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentWriter: The remote document service (create, batched text
//     insertion, structural re-fetch, batched formatting)
//
// # Supporting Interfaces
//
//   - TokenProvider: Supplies access tokens for authenticated API calls
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
