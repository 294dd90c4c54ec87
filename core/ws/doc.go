// Package ws implements the lifecycle state machine of one upgraded
// bidirectional connection.
//
// A Conn moves through three states: StateClosed (initial and terminal),
// StateConnecting (opening event received), and StateConnected (acceptance
// emitted). Every operation validates the current state before acting and
// fails with a typed error rather than silently no-op-ing: upgraded-channel
// protocols are order-sensitive and a misordered operation is a caller bug
// that must surface immediately.
//
// The connection is driven through a Transport of tagged events, decoupling
// the state machine from any particular wire protocol. Upgrade adapts an
// HTTP upgrade request into that event model using gorilla/websocket.
//
// Error taxonomy:
//
//   - ErrProtocol: an operation was attempted from an illegal state, or the
//     peer violated the expected event ordering.
//   - ErrNotConnected: a data operation (send, receive, close) was attempted
//     outside its legal state set.
//   - *DisconnectError: the peer terminated the connection during a receive;
//     carries the peer-supplied close code.
package ws
