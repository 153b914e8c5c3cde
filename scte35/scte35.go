// Package scte35 decodes binary SCTE-35 splice_info_section messages per the
// ANSI/SCTE 35 specification. Decoding is strict: reserved bit groups are
// validated against their mandated patterns, enumerated fields reject unknown
// values, and every length-prefixed region is parsed through its own bounded
// cursor. Only the time_signal command and the avail, DTMF and segmentation
// descriptors are decoded; the remaining variants fail with ErrNotImplemented
// so callers can tell "well-formed but unsupported" apart from "corrupt".
//
// The package is decode-only. Encrypted sections are rejected.
package scte35

import (
	"fmt"
	"time"
)

const tableID = 0xFC

// Splice command types per SCTE-35 Table 6.
const (
	SpliceNullType           uint32 = 0x00
	SpliceScheduleType       uint32 = 0x04
	SpliceInsertType         uint32 = 0x05
	TimeSignalType           uint32 = 0x06
	BandwidthReservationType uint32 = 0x07
	PrivateCommandType       uint32 = 0xFF
)

// SpliceCommand is the interface for splice command types.
type SpliceCommand interface {
	Type() uint32
	AsMap() map[string]any
	decode(r *bitReader) error
	equal(other SpliceCommand) bool
}

// SpliceDescriptor is the interface for splice descriptor types.
type SpliceDescriptor interface {
	Tag() uint32
	AsMap() map[string]any
	decode(r *bitReader) error
	equal(other SpliceDescriptor) bool
}

// SpliceDescriptors is a slice of SpliceDescriptor.
type SpliceDescriptors []SpliceDescriptor

// SpliceInfoSection is the decoded top-level SCTE-35 structure. It is
// immutable once returned by DecodeBytes.
type SpliceInfoSection struct {
	ptsAdjustment uint64
	tier          uint32
	command       SpliceCommand
	descriptors   SpliceDescriptors
}

// DecodeBytes decodes a binary splice_info_section, typically the
// Base64-decoded CUE payload of an HLS #EXT-X-SCTE35 tag. Any framing
// violation, unknown enumerated value or short read aborts the decode.
func DecodeBytes(data []byte) (*SpliceInfoSection, error) {
	r := newBitReader(data)

	tid := r.readUint32(8)
	r.skip(1) // section_syntax_indicator
	r.skip(1) // private_indicator
	reserved := r.readUint32(2)
	sectionLength := int(r.readUint32(12))
	if err := r.Err(); err != nil {
		return nil, err
	}
	if tid != tableID {
		return nil, fmt.Errorf("%w: 0x%02X", ErrInvalidTableID, tid)
	}
	if reserved != 0x3 {
		return nil, fmt.Errorf("%w: section header reserved = %#02b", ErrReservedBits, reserved)
	}

	// All remaining reads are confined to the declared section body.
	sec := r.sliceBytes(sectionLength)
	if err := r.Err(); err != nil {
		return nil, err
	}

	sec.skip(8) // protocol_version
	encrypted := sec.readBit()
	sec.skip(6) // encryption_algorithm
	ptsAdjustment := sec.readUint64(33)
	sec.skip(8) // cw_index
	tier := sec.readUint32(12)
	commandLength := int(sec.readUint32(12))
	commandType := sec.readUint32(8)
	if err := sec.Err(); err != nil {
		return nil, err
	}
	if encrypted {
		return nil, ErrUnsupportedEncryption
	}

	cmd, err := decodeSpliceCommand(commandType, sec.sliceBytes(commandLength))
	if err != nil {
		return nil, err
	}

	loopLength := int(sec.readUint32(16))
	loop := sec.sliceBytes(loopLength)
	if err := sec.Err(); err != nil {
		return nil, err
	}
	descriptors, err := decodeSpliceDescriptors(loop)
	if err != nil {
		return nil, err
	}

	return &SpliceInfoSection{
		ptsAdjustment: ptsAdjustment,
		tier:          tier,
		command:       cmd,
		descriptors:   descriptors,
	}, nil
}

// PTSAdjustment returns the 33-bit offset, in 90 kHz ticks, applied to all
// pts_time fields throughout the message.
func (sis *SpliceInfoSection) PTSAdjustment() uint64 {
	return sis.ptsAdjustment
}

// PTSAdjustmentDuration returns PTSAdjustment as a wall-clock duration.
func (sis *SpliceInfoSection) PTSAdjustmentDuration() time.Duration {
	return TicksToDuration(sis.ptsAdjustment)
}

// Tier returns the 12-bit authorization tier. 0xFFF is the wildcard value.
func (sis *SpliceInfoSection) Tier() uint32 {
	return sis.tier
}

// Command returns the decoded splice command.
func (sis *SpliceInfoSection) Command() SpliceCommand {
	return sis.command
}

// Descriptors returns the splice descriptors in wire order.
func (sis *SpliceInfoSection) Descriptors() SpliceDescriptors {
	out := make(SpliceDescriptors, len(sis.descriptors))
	copy(out, sis.descriptors)
	return out
}

// Equal reports structural equality: all fields equal and descriptor
// sequences equal element-wise in order.
func (sis *SpliceInfoSection) Equal(other *SpliceInfoSection) bool {
	if other == nil {
		return false
	}
	if sis.ptsAdjustment != other.ptsAdjustment || sis.tier != other.tier {
		return false
	}
	if !sis.command.equal(other.command) {
		return false
	}
	if len(sis.descriptors) != len(other.descriptors) {
		return false
	}
	for i, d := range sis.descriptors {
		if !d.equal(other.descriptors[i]) {
			return false
		}
	}
	return true
}

func decodeSpliceCommand(commandType uint32, r *bitReader) (SpliceCommand, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	var cmd SpliceCommand
	switch commandType {
	case TimeSignalType:
		cmd = &TimeSignal{}
	case SpliceNullType, SpliceScheduleType, SpliceInsertType,
		BandwidthReservationType, PrivateCommandType:
		return nil, fmt.Errorf("%w: %s command", ErrNotImplemented, commandName(commandType))
	default:
		return nil, fmt.Errorf("%w: splice_command_type 0x%02X", ErrUnknownEnumValue, commandType)
	}
	if err := cmd.decode(r); err != nil {
		return nil, err
	}
	return cmd, nil
}

func commandName(commandType uint32) string {
	switch commandType {
	case SpliceNullType:
		return "splice_null"
	case SpliceScheduleType:
		return "splice_schedule"
	case SpliceInsertType:
		return "splice_insert"
	case TimeSignalType:
		return "time_signal"
	case BandwidthReservationType:
		return "bandwidth_reservation"
	case PrivateCommandType:
		return "private_command"
	}
	return fmt.Sprintf("0x%02X", commandType)
}
