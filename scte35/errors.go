package scte35

import "errors"

// Errors reported by the decoder. Decode-time errors abort the whole decode;
// no partial section is ever returned. ErrFieldNotApplicable is raised lazily
// by accessors, never during decode. All are matched with errors.Is.
var (
	// ErrInvalidTableID indicates the first byte was not 0xFC.
	ErrInvalidTableID = errors.New("scte35: invalid table_id")

	// ErrReservedBits indicates a reserved bit group did not hold its
	// mandated all-ones pattern. This signals either a non-conformant
	// encoder or a misaligned read upstream.
	ErrReservedBits = errors.New("scte35: reserved bits violation")

	// ErrUnsupportedEncryption indicates the encrypted_packet flag was set.
	ErrUnsupportedEncryption = errors.New("scte35: encrypted sections are not supported")

	// ErrUnknownEnumValue indicates a wire-level enumerated field held a
	// value outside the defined enumeration.
	ErrUnknownEnumValue = errors.New("scte35: unknown enumerated value")

	// ErrNotImplemented indicates a well-formed command or descriptor
	// variant this decoder does not handle. Distinct from malformed input.
	ErrNotImplemented = errors.New("scte35: not implemented")

	// ErrTruncatedInput indicates a read ran past the end of a bounded
	// region.
	ErrTruncatedInput = errors.New("scte35: truncated input")

	// ErrFieldNotApplicable indicates an accessor was invoked on a field
	// that is undefined for the decoded flag combination.
	ErrFieldNotApplicable = errors.New("scte35: field not defined")
)
