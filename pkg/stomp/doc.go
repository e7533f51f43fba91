// Package stomp implements the version-dependent validation and
// normalization rules for STOMP frames across protocol revisions 1.0,
// 1.1 and 1.2.
//
// It is the pure layer underneath a frame codec and a connection
// negotiator: callers hand in raw command tokens, header pairs and
// version descriptors, and get back booleans, typed headers or a single
// negotiated revision. Nothing here touches the network or keeps state,
// so every function is safe to call from any goroutine.
package stomp
