package stomp

import (
	"sort"
	"strconv"
	"strings"
)

// Well-known frame header names.
const (
	HeaderAcceptVersion = "accept-version"
	HeaderAck           = "ack"
	HeaderContentLength = "content-length"
	HeaderDestination   = "destination"
	HeaderHeartBeat     = "heart-beat"
	HeaderID            = "id"
	HeaderMessageID     = "message-id"
	HeaderReceipt       = "receipt"
	HeaderSubscription  = "subscription"
	HeaderVersion       = "version"
)

// Headers are raw frame headers as they arrive off the wire, before
// normalization.
type Headers map[string]string

// SortedKeys returns the header names in sorted order.
func (h Headers) SortedKeys() []string {
	var keys []string
	if n := len(h); n > 0 {
		keys = make([]string, 0, n)
		for k := range h {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}
	return keys
}

// Header is the normalized form of one raw header pair. FormatHeader
// returns exactly one of IntHeader, FloatHeader or TextHeader.
type Header interface {
	// Name is the key the normalized header is stored under. It matches
	// the raw key except for the version header (see FormatHeader).
	Name() string
}

// IntHeader carries a header with an integer value, e.g. content-length.
type IntHeader struct {
	Key   string
	Value int
}

func (h IntHeader) Name() string { return h.Key }

// FloatHeader carries a header with a floating-point value.
type FloatHeader struct {
	Key   string
	Value float64
}

func (h FloatHeader) Name() string { return h.Key }

// TextHeader is the passthrough case: the raw pair unchanged.
type TextHeader struct {
	Key   string
	Value string
}

func (h TextHeader) Name() string { return h.Key }

// FormatHeader normalizes one raw header pair into its typed form.
//
// content-length must parse as a base-10 integer and version as a float;
// either failure surfaces as a *FormatError. The version header comes back
// under the key "value" rather than "version" — existing callers depend on
// that rename, keep it as-is.
func FormatHeader(key, value string) (Header, error) {
	switch key {
	case HeaderContentLength:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, newFormatError(key, value, err)
		}
		return IntHeader{Key: key, Value: n}, nil
	case HeaderVersion:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, newFormatError(key, value, err)
		}
		return FloatHeader{Key: "value", Value: f}, nil
	default:
		return TextHeader{Key: key, Value: value}, nil
	}
}

// AckHeaderKey returns the header a client reads when acknowledging or
// negating a message. Protocol 1.2 switched to the subscription-scoped id
// header; every other revision, unrecognized ones included, uses
// message-id.
func AckHeaderKey(version Version) string {
	if version == Version12 {
		return HeaderID
	}
	return HeaderMessageID
}

// HeartBeat is the decoded 1.1+ heart-beat header: the shortest interval
// in milliseconds the sender can emit beats at, and the interval it wants
// to receive them at. Zero means no heart-beats in that direction.
type HeartBeat struct {
	Send    int
	Receive int
}

// ParseHeartBeat decodes a heart-beat header value of the form "sx,sy".
// Both fields must be non-negative base-10 integers.
func ParseHeartBeat(value string) (HeartBeat, error) {
	sx, sy, ok := strings.Cut(value, ",")
	if !ok {
		return HeartBeat{}, newFormatError(HeaderHeartBeat, value, nil)
	}
	send, err := strconv.Atoi(sx)
	if err != nil || send < 0 {
		return HeartBeat{}, newFormatError(HeaderHeartBeat, value, err)
	}
	recv, err := strconv.Atoi(sy)
	if err != nil || recv < 0 {
		return HeartBeat{}, newFormatError(HeaderHeartBeat, value, err)
	}
	return HeartBeat{Send: send, Receive: recv}, nil
}
