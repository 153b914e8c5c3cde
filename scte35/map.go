package scte35

import (
	"encoding/json"
	"time"
)

// TicksToDuration converts a 90 kHz tick count to a wall-clock duration.
// Safe for the full 40-bit range of segmentation_duration.
func TicksToDuration(ticks uint64) time.Duration {
	seconds := ticks / 90000
	rem := ticks % 90000
	return time.Duration(seconds)*time.Second + time.Duration(rem)*time.Second/90000
}

// AsMap projects the section into a generic mapping of string keys to
// primitive values, nested mappings and sequences, suitable for interchange.
func (sis *SpliceInfoSection) AsMap() map[string]any {
	descriptors := make([]any, 0, len(sis.descriptors))
	for _, d := range sis.descriptors {
		descriptors = append(descriptors, d.AsMap())
	}
	return map[string]any{
		"pts_adjustment": sis.ptsAdjustment,
		"tier":           sis.tier,
		"splice_command": sis.command.AsMap(),
		"descriptors":    descriptors,
	}
}

// MarshalJSON serializes the AsMap projection. encoding/json emits map keys
// in sorted order, so the output is deterministic.
func (sis *SpliceInfoSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(sis.AsMap())
}
