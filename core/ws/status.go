package ws

// Close status codes defined in RFC 6455, section 7.4.1.
const (
	// StatusNormalClosure indicates a normal closure, meaning that the
	// purpose for which the connection was established has been fulfilled.
	StatusNormalClosure = 1000

	// StatusGoingAway indicates that an endpoint is "going away", such as a
	// server going down or a browser having navigated away from a page.
	StatusGoingAway = 1001

	// StatusProtocolError indicates that an endpoint is terminating the
	// connection due to a protocol error.
	StatusProtocolError = 1002

	// StatusUnsupportedData indicates that an endpoint is terminating the
	// connection because it has received a type of data it cannot accept.
	StatusUnsupportedData = 1003

	// StatusReserved is reserved. The specific meaning might be defined in
	// the future.
	StatusReserved = 1004

	// StatusNoStatusReceived is reserved and must not be sent in a close
	// frame; it indicates to applications that no status code was present.
	StatusNoStatusReceived = 1005

	// StatusAbnormalClosure is reserved and must not be sent in a close
	// frame; it indicates the connection was closed without a close frame.
	StatusAbnormalClosure = 1006

	// StatusInvalidPayload indicates that an endpoint is terminating the
	// connection because it has received data inconsistent with the type of
	// the message.
	StatusInvalidPayload = 1007

	// StatusPolicyViolation indicates that an endpoint is terminating the
	// connection because it has received a message that violates its policy.
	StatusPolicyViolation = 1008

	// StatusMessageTooBig indicates that an endpoint is terminating the
	// connection because it has received a message too big to process.
	StatusMessageTooBig = 1009

	// StatusMandatoryExtension indicates that a client is terminating the
	// connection because the server failed to negotiate a required
	// extension.
	StatusMandatoryExtension = 1010

	// StatusInternalError indicates that an endpoint is terminating the
	// connection because it encountered an unexpected condition.
	StatusInternalError = 1011
)
