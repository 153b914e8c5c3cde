package scte35

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"
)

// SegmentationComponent identifies one elementary stream component and its
// splice time offset, used in component segmentation mode.
type SegmentationComponent struct {
	Tag       uint32
	PTSOffset uint64
}

// SegmentationDescriptor carries program/segment boundary metadata per
// SCTE-35 10.3.3. Its field set forks on four nested flags; fields that are
// undefined for the decoded flag combination fail with ErrFieldNotApplicable
// when accessed, mirroring the protocol's conditional grammar:
//
//   - when the cancel indicator is set, only the event id is defined
//   - the restriction flags exist only when delivery_not_restricted is clear
//   - components exist only in component segmentation mode
//   - segmentation_duration exists only when its flag is set
//   - sub-segment counts exist only for provider placement opportunities,
//     and only when the encoder emitted them
type SegmentationDescriptor struct {
	eventID               uint32
	cancelled             bool
	programSegmentation   bool
	durationFlag          bool
	deliveryNotRestricted bool
	webDeliveryAllowed    bool
	noRegionalBlackout    bool
	archiveAllowed        bool
	deviceRestrictions    uint32
	components            []SegmentationComponent
	duration              uint64
	upidType              UPIDType
	upid                  []byte
	typeID                SegmentationType
	segmentNum            uint32
	segmentsExpected      uint32
	subSegmentNum         uint32
	subSegmentsExpected   uint32
	hasSubSegments        bool
}

// Tag returns the splice_descriptor_tag.
func (d *SegmentationDescriptor) Tag() uint32 { return SegmentationDescriptorTag }

// SegmentationEventID returns the 32-bit event id. Unique while the event is
// active; reusable once the matching segment end has been signaled.
func (d *SegmentationDescriptor) SegmentationEventID() uint32 { return d.eventID }

// CancelIndicator reports whether this descriptor cancels a previously sent
// segmentation event. When set, no other field is defined.
func (d *SegmentationDescriptor) CancelIndicator() bool { return d.cancelled }

func (d *SegmentationDescriptor) notCancelled(field string) error {
	if d.cancelled {
		return fmt.Errorf("%w: %s on cancelled segmentation event", ErrFieldNotApplicable, field)
	}
	return nil
}

func (d *SegmentationDescriptor) restrictionsPresent(field string) error {
	if err := d.notCancelled(field); err != nil {
		return err
	}
	if d.deliveryNotRestricted {
		return fmt.Errorf("%w: %s when delivery_not_restricted_flag is set", ErrFieldNotApplicable, field)
	}
	return nil
}

// ProgramSegmentationFlag reports program segmentation mode (all components
// segmented) as opposed to component segmentation mode.
func (d *SegmentationDescriptor) ProgramSegmentationFlag() (bool, error) {
	if err := d.notCancelled("program_segmentation_flag"); err != nil {
		return false, err
	}
	return d.programSegmentation, nil
}

// SegmentationDurationFlag reports the presence of a segmentation_duration.
func (d *SegmentationDescriptor) SegmentationDurationFlag() (bool, error) {
	if err := d.notCancelled("segmentation_duration_flag"); err != nil {
		return false, err
	}
	return d.durationFlag, nil
}

// DeliveryNotRestrictedFlag reports that the content carries no delivery
// restrictions. When set, the individual restriction flags are not defined.
func (d *SegmentationDescriptor) DeliveryNotRestrictedFlag() (bool, error) {
	if err := d.notCancelled("delivery_not_restricted_flag"); err != nil {
		return false, err
	}
	return d.deliveryNotRestricted, nil
}

// WebDeliveryAllowedFlag reports that there are no web delivery restrictions
// for this segment.
func (d *SegmentationDescriptor) WebDeliveryAllowedFlag() (bool, error) {
	if err := d.restrictionsPresent("web_delivery_allowed_flag"); err != nil {
		return false, err
	}
	return d.webDeliveryAllowed, nil
}

// NoRegionalBlackoutFlag reports that there is no regional blackout of this
// segment.
func (d *SegmentationDescriptor) NoRegionalBlackoutFlag() (bool, error) {
	if err := d.restrictionsPresent("no_regional_blackout_flag"); err != nil {
		return false, err
	}
	return d.noRegionalBlackout, nil
}

// ArchiveAllowedFlag reports that recording of this segment is allowed.
func (d *SegmentationDescriptor) ArchiveAllowedFlag() (bool, error) {
	if err := d.restrictionsPresent("archive_allowed_flag"); err != nil {
		return false, err
	}
	return d.archiveAllowed, nil
}

// DeviceRestrictions returns the 2-bit device restriction group.
func (d *SegmentationDescriptor) DeviceRestrictions() (uint32, error) {
	if err := d.restrictionsPresent("device_restrictions"); err != nil {
		return 0, err
	}
	return d.deviceRestrictions, nil
}

// Components returns a copy of the component list. Defined only in component
// segmentation mode.
func (d *SegmentationDescriptor) Components() ([]SegmentationComponent, error) {
	if err := d.notCancelled("components"); err != nil {
		return nil, err
	}
	if d.programSegmentation {
		return nil, fmt.Errorf("%w: components when program_segmentation_flag is set", ErrFieldNotApplicable)
	}
	return append([]SegmentationComponent(nil), d.components...), nil
}

// SegmentationDuration returns the 40-bit duration in 90 kHz ticks. Defined
// only when segmentation_duration_flag is set.
func (d *SegmentationDescriptor) SegmentationDuration() (uint64, error) {
	if err := d.notCancelled("segmentation_duration"); err != nil {
		return 0, err
	}
	if !d.durationFlag {
		return 0, fmt.Errorf("%w: segmentation_duration when segmentation_duration_flag is clear", ErrFieldNotApplicable)
	}
	return d.duration, nil
}

// SegmentationDurationAsDuration returns the segmentation duration as a
// wall-clock duration.
func (d *SegmentationDescriptor) SegmentationDurationAsDuration() (time.Duration, error) {
	ticks, err := d.SegmentationDuration()
	if err != nil {
		return 0, err
	}
	return TicksToDuration(ticks), nil
}

// UPIDType returns the segmentation_upid_type.
func (d *SegmentationDescriptor) UPIDType() (UPIDType, error) {
	if err := d.notCancelled("segmentation_upid_type"); err != nil {
		return 0, err
	}
	return d.upidType, nil
}

// UPID returns a copy of the raw segmentation_upid bytes.
func (d *SegmentationDescriptor) UPID() ([]byte, error) {
	if err := d.notCancelled("segmentation_upid"); err != nil {
		return nil, err
	}
	return append([]byte(nil), d.upid...), nil
}

// SegmentationTypeID returns the segmentation type.
func (d *SegmentationDescriptor) SegmentationTypeID() (SegmentationType, error) {
	if err := d.notCancelled("segmentation_type_id"); err != nil {
		return 0, err
	}
	return d.typeID, nil
}

// SegmentNum returns the numbering of this segment within its series.
func (d *SegmentationDescriptor) SegmentNum() (uint32, error) {
	if err := d.notCancelled("segment_num"); err != nil {
		return 0, err
	}
	return d.segmentNum, nil
}

// SegmentsExpected returns the count of expected segments in the series.
func (d *SegmentationDescriptor) SegmentsExpected() (uint32, error) {
	if err := d.notCancelled("segments_expected"); err != nil {
		return 0, err
	}
	return d.segmentsExpected, nil
}

func (d *SegmentationDescriptor) subSegmentsDefined(field string) error {
	if err := d.notCancelled(field); err != nil {
		return err
	}
	if !d.hasSubSegments {
		return fmt.Errorf("%w: %s not carried by this descriptor", ErrFieldNotApplicable, field)
	}
	return nil
}

// SubSegmentNum returns the sub-segment number. Carried only by provider
// placement opportunity descriptors whose encoder emitted the optional
// trailing fields.
func (d *SegmentationDescriptor) SubSegmentNum() (uint32, error) {
	if err := d.subSegmentsDefined("sub_segment_num"); err != nil {
		return 0, err
	}
	return d.subSegmentNum, nil
}

// SubSegmentsExpected returns the count of expected sub-segments.
func (d *SegmentationDescriptor) SubSegmentsExpected() (uint32, error) {
	if err := d.subSegmentsDefined("sub_segments_expected"); err != nil {
		return 0, err
	}
	return d.subSegmentsExpected, nil
}

func (d *SegmentationDescriptor) decode(r *bitReader) error {
	if err := readCUEIdentifier(r, "segmentation_descriptor"); err != nil {
		return err
	}
	d.eventID = r.readUint32(32)
	d.cancelled = r.readBit()
	reserved := r.readUint32(7)
	if err := r.Err(); err != nil {
		return err
	}
	if reserved != 0x7F {
		return fmt.Errorf("%w: reserved after segmentation_event_cancel_indicator = %#07b", ErrReservedBits, reserved)
	}
	if d.cancelled {
		return nil
	}

	d.programSegmentation = r.readBit()
	d.durationFlag = r.readBit()
	d.deliveryNotRestricted = r.readBit()
	if !d.deliveryNotRestricted {
		d.webDeliveryAllowed = r.readBit()
		d.noRegionalBlackout = r.readBit()
		d.archiveAllowed = r.readBit()
		d.deviceRestrictions = r.readUint32(2)
		if err := r.Err(); err != nil {
			return err
		}
	} else {
		reserved = r.readUint32(5)
		if err := r.Err(); err != nil {
			return err
		}
		if reserved != 0x1F {
			return fmt.Errorf("%w: reserved after delivery_not_restricted_flag = %#05b", ErrReservedBits, reserved)
		}
	}

	if !d.programSegmentation {
		count := int(r.readUint32(8))
		for i := 0; i < count; i++ {
			tag := r.readUint32(8)
			reserved = r.readUint32(7)
			offset := r.readUint64(33)
			if err := r.Err(); err != nil {
				return err
			}
			if reserved != 0x7F {
				return fmt.Errorf("%w: reserved in segmentation component %d = %#07b", ErrReservedBits, i, reserved)
			}
			d.components = append(d.components, SegmentationComponent{Tag: tag, PTSOffset: offset})
		}
	}

	if d.durationFlag {
		d.duration = r.readUint64(40)
	}

	upidType := r.readUint32(8)
	upidLength := int(r.readUint32(8))
	if err := r.Err(); err != nil {
		return err
	}
	if !UPIDType(upidType).Valid() {
		return fmt.Errorf("%w: segmentation_upid_type 0x%02X", ErrUnknownEnumValue, upidType)
	}
	d.upidType = UPIDType(upidType)
	d.upid = r.readBytes(upidLength)

	typeID := r.readUint32(8)
	d.segmentNum = r.readUint32(8)
	d.segmentsExpected = r.readUint32(8)
	if err := r.Err(); err != nil {
		return err
	}
	if !SegmentationType(typeID).Valid() {
		return fmt.Errorf("%w: segmentation_type_id 0x%02X", ErrUnknownEnumValue, typeID)
	}
	d.typeID = SegmentationType(typeID)

	// Trailing sub-segment fields are optional on the wire: encoders may
	// truncate them away, which is tolerated rather than treated as an error.
	if d.typeID == SegmentationTypeProviderPOStart || d.typeID == SegmentationTypeProviderPOEnd {
		if r.bitsLeft() >= 16 {
			d.subSegmentNum = r.readUint32(8)
			d.subSegmentsExpected = r.readUint32(8)
			d.hasSubSegments = true
		}
	}
	return r.Err()
}

func (d *SegmentationDescriptor) equal(other SpliceDescriptor) bool {
	o, ok := other.(*SegmentationDescriptor)
	if !ok {
		return false
	}
	if d.eventID != o.eventID || d.cancelled != o.cancelled {
		return false
	}
	if d.cancelled {
		return true
	}
	if d.programSegmentation != o.programSegmentation ||
		d.durationFlag != o.durationFlag ||
		d.deliveryNotRestricted != o.deliveryNotRestricted ||
		d.webDeliveryAllowed != o.webDeliveryAllowed ||
		d.noRegionalBlackout != o.noRegionalBlackout ||
		d.archiveAllowed != o.archiveAllowed ||
		d.deviceRestrictions != o.deviceRestrictions ||
		d.duration != o.duration ||
		d.upidType != o.upidType ||
		d.typeID != o.typeID ||
		d.segmentNum != o.segmentNum ||
		d.segmentsExpected != o.segmentsExpected ||
		d.hasSubSegments != o.hasSubSegments ||
		d.subSegmentNum != o.subSegmentNum ||
		d.subSegmentsExpected != o.subSegmentsExpected {
		return false
	}
	if !bytes.Equal(d.upid, o.upid) {
		return false
	}
	if len(d.components) != len(o.components) {
		return false
	}
	for i, c := range d.components {
		if c != o.components[i] {
			return false
		}
	}
	return true
}

// AsMap projects the descriptor into a generic mapping suitable for JSON
// serialization. Only fields defined for the decoded flag combination appear;
// enum values project as their symbolic names and the UPID bytes as hex.
func (d *SegmentationDescriptor) AsMap() map[string]any {
	inner := map[string]any{
		"segmentation_event_id":               d.eventID,
		"segmentation_event_cancel_indicator": d.cancelled,
	}
	if !d.cancelled {
		inner["program_segmentation_flag"] = d.programSegmentation
		inner["segmentation_duration_flag"] = d.durationFlag
		inner["delivery_not_restricted_flag"] = d.deliveryNotRestricted
		if !d.deliveryNotRestricted {
			inner["web_delivery_allowed_flag"] = d.webDeliveryAllowed
			inner["no_regional_blackout_flag"] = d.noRegionalBlackout
			inner["archive_allowed_flag"] = d.archiveAllowed
			inner["device_restrictions"] = d.deviceRestrictions
		}
		if !d.programSegmentation {
			components := make([]any, 0, len(d.components))
			for _, c := range d.components {
				components = append(components, map[string]any{
					"tag":        c.Tag,
					"pts_offset": c.PTSOffset,
				})
			}
			inner["components"] = components
		}
		if d.durationFlag {
			inner["segmentation_duration"] = d.duration
		}
		inner["segmentation_upid"] = map[string]any{
			"type":  d.upidType.String(),
			"bytes": hex.EncodeToString(d.upid),
		}
		inner["segmentation_type"] = d.typeID.String()
		inner["segment_num"] = d.segmentNum
		inner["segments_expected"] = d.segmentsExpected
		if d.hasSubSegments {
			inner["sub_segment_num"] = d.subSegmentNum
			inner["sub_segments_expected"] = d.subSegmentsExpected
		}
	}
	return map[string]any{"segmentation_descriptor": inner}
}
