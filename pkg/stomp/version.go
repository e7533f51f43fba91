package stomp

import "strconv"

// Version is a STOMP protocol revision.
type Version float64

const (
	Version10 Version = 1.0
	Version11 Version = 1.1
	Version12 Version = 1.2

	// DefaultVersion is assumed whenever negotiation supplies no version
	// information at all.
	DefaultVersion = Version10

	// NewestVersion is the highest revision this package understands and
	// the default for command validation.
	NewestVersion = Version12
)

// String formats the revision the way it appears in negotiation headers,
// e.g. "1.2".
func (v Version) String() string {
	return strconv.FormatFloat(float64(v), 'f', 1, 64)
}

// ParseVersion normalizes a single version descriptor. An empty string
// means the peer supplied nothing and yields DefaultVersion; anything else
// must be a float literal or the call fails with a *FormatError.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return DefaultVersion, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newFormatError(HeaderVersion, s, err)
	}
	return Version(f), nil
}

// NegotiateVersion selects the highest revision out of the versions a peer
// offered. A nil or empty list yields DefaultVersion; any element that is
// not a float literal fails the whole negotiation with a *FormatError.
func NegotiateVersion(offered []string) (Version, error) {
	if len(offered) == 0 {
		return DefaultVersion, nil
	}
	var best Version
	for i, s := range offered {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, newFormatError(HeaderAcceptVersion, s, err)
		}
		if v := Version(f); i == 0 || v > best {
			best = v
		}
	}
	return best, nil
}
