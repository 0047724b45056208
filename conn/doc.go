/*

Package conn implements the per-node connection state machine: socket handshake, compression negotiation,
authentication, stream-id multiplexed request dispatch, and re-prepare-on-miss. It owns exactly one TCP socket and
its in-flight request table; callers (cluster.Pool, cqlwire.Session) never touch the socket directly.

A secondary set of files in this package (server.go, system.go, handlers.go) implements an in-process mock CQL
server used by this package's own tests, by cluster's and the root package's tests, and by cmd/cqlwire-demo, so
the S1-S6 scenarios in the driver's test suite can run without a live Cassandra-compatible node.

*/
package conn
