package scte35

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// DTMFDescriptor instructs a receiver to generate a legacy analog DTMF
// sequence when the section is received.
type DTMFDescriptor struct {
	preroll    uint32
	dtmfString []byte
}

// Tag returns the splice_descriptor_tag.
func (d *DTMFDescriptor) Tag() uint32 { return DTMFDescriptorTag }

// Preroll returns the time the DTMF is presented to the analog output, in
// tenths of a second (0 to 25.5 seconds).
func (d *DTMFDescriptor) Preroll() uint32 { return d.preroll }

// DTMFString returns a copy of the DTMF characters the device is to generate.
func (d *DTMFDescriptor) DTMFString() []byte {
	return append([]byte(nil), d.dtmfString...)
}

func (d *DTMFDescriptor) decode(r *bitReader) error {
	if err := readCUEIdentifier(r, "DTMF_descriptor"); err != nil {
		return err
	}
	d.preroll = r.readUint32(8)
	count := int(r.readUint32(3))
	reserved := r.readUint32(5)
	if err := r.Err(); err != nil {
		return err
	}
	if reserved != 0x1F {
		return fmt.Errorf("%w: DTMF_descriptor reserved = %#05b", ErrReservedBits, reserved)
	}
	d.dtmfString = r.readBytes(count)
	return r.Err()
}

func (d *DTMFDescriptor) equal(other SpliceDescriptor) bool {
	o, ok := other.(*DTMFDescriptor)
	return ok && d.preroll == o.preroll && bytes.Equal(d.dtmfString, o.dtmfString)
}

// AsMap projects the descriptor into a generic mapping suitable for JSON
// serialization. The DTMF string is given in hex.
func (d *DTMFDescriptor) AsMap() map[string]any {
	return map[string]any{
		"DTMF_descriptor": map[string]any{
			"preroll":     d.preroll,
			"dtmf_string": hex.EncodeToString(d.dtmfString),
		},
	}
}
