/*
Package ports defines the driven ports (interfaces) for the Switchyard engine.

These interfaces decouple the session layer from external implementations, allowing
cursors to live in memory, on disk, in an embedded bbolt file or in Redis.

# Key Interfaces

  - CursorStore: Responsible for persisting and loading session cursors.
  - DistributedLocker: Provides distributed locking for handling concurrent session access.
*/
package ports
