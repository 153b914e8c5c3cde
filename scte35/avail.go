package scte35

// AvailDescriptor carries an authorization identifier for an avail.
type AvailDescriptor struct {
	providerAvailID uint32
}

// Tag returns the splice_descriptor_tag.
func (d *AvailDescriptor) Tag() uint32 { return AvailDescriptorTag }

// ProviderAvailID returns the 32-bit number a receiving device may use to
// alter its behavior during or outside of an avail, in a manner similar to
// analog cue tones.
func (d *AvailDescriptor) ProviderAvailID() uint32 { return d.providerAvailID }

func (d *AvailDescriptor) decode(r *bitReader) error {
	if err := readCUEIdentifier(r, "avail_descriptor"); err != nil {
		return err
	}
	d.providerAvailID = r.readUint32(32)
	return r.Err()
}

func (d *AvailDescriptor) equal(other SpliceDescriptor) bool {
	o, ok := other.(*AvailDescriptor)
	return ok && *d == *o
}

// AsMap projects the descriptor into a generic mapping suitable for JSON
// serialization.
func (d *AvailDescriptor) AsMap() map[string]any {
	return map[string]any{
		"avail_descriptor": map[string]any{
			"provider_avail_id": d.providerAvailID,
		},
	}
}
