package attrs

// AttrError is an error type for attribute lists.
type AttrError string

func (e AttrError) Error() string {
	return string(e)
}

// ErrImbalancedQuotes is flagged when an attribute value opens a quote which
// is never closed.
const ErrImbalancedQuotes = AttrError("imbalanced quotes in attribute list")

// ErrInvalidInteger is flagged when a numeric attribute receives a value which
// is not an integer. It is wrapped together with the offending key and value.
const ErrInvalidInteger = AttrError("attribute value is not an integer")

// ErrUnrecognizedAttribute is flagged for keys on the reject list.
const ErrUnrecognizedAttribute = AttrError("unrecognized attribute")

// Rejected is the closed list of keys which are refused by decoding and
// encoding. It is empty; the vocabulary is open for extension options.
var Rejected = map[string]struct{}{}

func rejected(key string) bool {
	_, ok := Rejected[key]
	return ok
}
