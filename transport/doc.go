/*
Package transport defines the interface to the remote table service.

The client facade talks to the service exclusively through TableTransport.

Implementations:
  - azure: Azure Table Storage implementation using the aztables SDK
  - memory: thread-safe in-memory implementation for testing
*/
package transport
