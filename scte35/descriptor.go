package scte35

import "fmt"

// Splice descriptor tags per SCTE-35 Table 16.
const (
	AvailDescriptorTag        uint32 = 0x00
	DTMFDescriptorTag         uint32 = 0x01
	SegmentationDescriptorTag uint32 = 0x02
	TimeDescriptorTag         uint32 = 0x03
)

// CUEIdentifier is the ASCII value of "CUEI", required as the identifier of
// every SCTE-35 splice descriptor.
const CUEIdentifier uint32 = 0x43554549

// decodeSpliceDescriptors consumes a bounded descriptor loop: tag byte,
// length byte, exactly that many body bytes, routed to the matching decoder.
// Termination is by exhausting the region; a decoder that under-reads its
// body leaves trailing bits that are ignored.
func decodeSpliceDescriptors(r *bitReader) (SpliceDescriptors, error) {
	var descriptors SpliceDescriptors
	for r.bitsLeft() > 0 {
		tag := r.readUint32(8)
		length := int(r.readUint32(8))
		body := r.sliceBytes(length)
		if err := r.Err(); err != nil {
			return nil, err
		}

		var desc SpliceDescriptor
		switch tag {
		case AvailDescriptorTag:
			desc = &AvailDescriptor{}
		case DTMFDescriptorTag:
			desc = &DTMFDescriptor{}
		case SegmentationDescriptorTag:
			desc = &SegmentationDescriptor{}
		case TimeDescriptorTag:
			return nil, fmt.Errorf("%w: time_descriptor", ErrNotImplemented)
		default:
			return nil, fmt.Errorf("%w: splice_descriptor_tag 0x%02X", ErrUnknownEnumValue, tag)
		}
		if err := desc.decode(body); err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}

func readCUEIdentifier(r *bitReader, name string) error {
	id := r.readUint32(32)
	if err := r.Err(); err != nil {
		return err
	}
	if id != CUEIdentifier {
		return fmt.Errorf("scte35: %s identifier 0x%08X is not CUEI", name, id)
	}
	return nil
}
