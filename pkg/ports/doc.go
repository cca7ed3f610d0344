/*
Package ports defines the driven ports (interfaces) of the transducer engine.

These interfaces decouple the engine from where tables come from and where
results are cached, so the same core runs from the CLI, an HTTP server or an
MCP server.

# Key Interfaces

  - TableLoader: resolves a table name to a parsed transition table (afs, memory).
  - ResultCache: stores transduction results keyed by table, direction and input (memory, redis).
  - Transducer: the engine surface consumed by the HTTP and MCP adapters.
*/
package ports
