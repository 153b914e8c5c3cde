package scte35

import (
	"fmt"
	"time"
)

// TimeSignal provides a time-synchronized data delivery mechanism. When the
// time_specified_flag is clear the command is immediate and carries no
// pts_time.
type TimeSignal struct {
	immediate bool
	ptsTime   uint64
}

// Type returns the splice_command_type.
func (cmd *TimeSignal) Type() uint32 { return TimeSignalType }

// IsImmediate reports whether the command carries no pts_time and is to be
// acted on immediately.
func (cmd *TimeSignal) IsImmediate() bool { return cmd.immediate }

// PTSTime returns the 33-bit splice time in 90 kHz ticks. It is defined if
// and only if the command is not immediate.
func (cmd *TimeSignal) PTSTime() (uint64, error) {
	if cmd.immediate {
		return 0, fmt.Errorf("%w: pts_time on immediate time_signal", ErrFieldNotApplicable)
	}
	return cmd.ptsTime, nil
}

// Duration returns the pts_time as a wall-clock duration, zero when the
// command is immediate.
func (cmd *TimeSignal) Duration() time.Duration {
	if cmd.immediate {
		return 0
	}
	return TicksToDuration(cmd.ptsTime)
}

func (cmd *TimeSignal) decode(r *bitReader) error {
	timeSpecified := r.readBit()
	if err := r.Err(); err != nil {
		return err
	}
	if !timeSpecified {
		cmd.immediate = true
		return nil
	}
	reserved := r.readUint32(6)
	pts := r.readUint64(33)
	if err := r.Err(); err != nil {
		return err
	}
	if reserved != 0x3F {
		return fmt.Errorf("%w: time_signal reserved = %#06b", ErrReservedBits, reserved)
	}
	cmd.ptsTime = pts
	return nil
}

func (cmd *TimeSignal) equal(other SpliceCommand) bool {
	o, ok := other.(*TimeSignal)
	return ok && *cmd == *o
}

// AsMap projects the command into a generic mapping suitable for JSON
// serialization.
func (cmd *TimeSignal) AsMap() map[string]any {
	inner := map[string]any{"is_immediate": cmd.immediate}
	if !cmd.immediate {
		inner["pts_time"] = cmd.ptsTime
	}
	return map[string]any{"time_signal": inner}
}
