// Package sync provides the cache-first data synchronization controller.
//
// The Controller decides what content the UI shows and which connectivity state it
// reports, given a local cache and an unreliable network.
//
// # Core Types
//
//   - Controller: owns the connection state, the published datasets, the in-flight attempt
//     and the grace timer
//   - ConnectionState: Initial, LoadingWithCache, LoadingWithoutCache, Connected, Offline
//     or Retrying
//   - Snapshot: a consistent view of the state and the flags derived from it for the UI
//
// # Attempts
//
// Every network attempt is tagged with an AttemptID. When an attempt completes, its result
// is only applied if its ID is still the current one; a superseded attempt is discarded
// without being treated as an error. At most one attempt runs at a time, and a primary
// fetch that does not settle within the fetch timeout fails with a timeout error.
//
// An attempt started by InitializeApp that fails, or only reaches locally cached content,
// leaves the state to the grace timer. An attempt started by RetryConnection reports
// Offline immediately.
//
// # Reachability
//
// The controller subscribes to a reachability.Monitor at construction. Losing the network
// path while connected moves to Offline without a grace period; regaining it while offline
// retries automatically.
package sync
