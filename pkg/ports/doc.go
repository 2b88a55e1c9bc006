/*
Package ports defines the driven ports (interfaces) for the Sahaj dialogue engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various storage backends and content sources.

# Key Interfaces

  - SessionStore: Responsible for persisting and loading dialogue Sessions.
  - ContentProvider: Responsible for resolving content keys into response text.
*/
package ports
