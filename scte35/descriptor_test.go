package scte35

import (
	"bytes"
	"errors"
	"testing"
)

// A hand-assembled section: immediate time_signal at tier 0xFFF with one
// avail descriptor and one DTMF descriptor. The trailing CRC is zeroed;
// DecodeBytes does not check it.
var syntheticSection = []byte{
	0xFC, 0x30, 0x27, // table id, reserved, section_length 39
	0x00,                         // protocol_version
	0x00, 0x00, 0x00, 0x00, 0x00, // not encrypted, pts_adjustment 0
	0x00,             // cw_index
	0xFF, 0xF0, 0x01, // tier 0xFFF, splice_command_length 1
	0x06,       // time_signal
	0x00,       // time_specified_flag clear
	0x00, 0x15, // descriptor_loop_length 21
	0x00, 0x08, 0x43, 0x55, 0x45, 0x49, 0x00, 0x00, 0x00, 0x80, // avail, id 128
	0x01, 0x09, 0x43, 0x55, 0x45, 0x49, 0x14, 0x7F, 0x31, 0x34, 0x39, // DTMF "149"
	0x00, 0x00, 0x00, 0x00, // CRC (unchecked)
}

func TestDecodeSyntheticSection(t *testing.T) {
	t.Parallel()
	sis, err := DecodeBytes(syntheticSection)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if got := sis.PTSAdjustment(); got != 0 {
		t.Errorf("PTSAdjustment = %d, want 0", got)
	}
	if got := sis.Tier(); got != 0xFFF {
		t.Errorf("Tier = 0x%03X, want 0xFFF", got)
	}

	cmd, ok := sis.Command().(*TimeSignal)
	if !ok {
		t.Fatalf("Command is %T, want *TimeSignal", sis.Command())
	}
	if !cmd.IsImmediate() {
		t.Error("IsImmediate = false, want true")
	}
	if _, err := cmd.PTSTime(); !errors.Is(err, ErrFieldNotApplicable) {
		t.Errorf("PTSTime err = %v, want ErrFieldNotApplicable", err)
	}
	if got := cmd.Duration(); got != 0 {
		t.Errorf("Duration = %v, want 0", got)
	}

	descriptors := sis.Descriptors()
	if len(descriptors) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(descriptors))
	}

	avail, ok := descriptors[0].(*AvailDescriptor)
	if !ok {
		t.Fatalf("descriptor 0 is %T, want *AvailDescriptor", descriptors[0])
	}
	if got := avail.Tag(); got != AvailDescriptorTag {
		t.Errorf("Tag = 0x%02X, want 0x00", got)
	}
	if got := avail.ProviderAvailID(); got != 128 {
		t.Errorf("ProviderAvailID = %d, want 128", got)
	}

	dtmf, ok := descriptors[1].(*DTMFDescriptor)
	if !ok {
		t.Fatalf("descriptor 1 is %T, want *DTMFDescriptor", descriptors[1])
	}
	if got := dtmf.Preroll(); got != 20 {
		t.Errorf("Preroll = %d, want 20", got)
	}
	if got := dtmf.DTMFString(); !bytes.Equal(got, []byte("149")) {
		t.Errorf("DTMFString = %q, want %q", got, "149")
	}
}

func TestDecodeDescriptorLoopDispatch(t *testing.T) {
	t.Parallel()

	t.Run("time descriptor", func(t *testing.T) {
		t.Parallel()
		body := []byte{0x03, 0x00}
		if _, err := decodeSpliceDescriptors(newBitReader(body)); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("err = %v, want ErrNotImplemented", err)
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		t.Parallel()
		body := []byte{0x99, 0x00}
		if _, err := decodeSpliceDescriptors(newBitReader(body)); !errors.Is(err, ErrUnknownEnumValue) {
			t.Errorf("err = %v, want ErrUnknownEnumValue", err)
		}
	})

	t.Run("length beyond loop", func(t *testing.T) {
		t.Parallel()
		body := []byte{0x00, 0x08, 0x43, 0x55}
		if _, err := decodeSpliceDescriptors(newBitReader(body)); !errors.Is(err, ErrTruncatedInput) {
			t.Errorf("err = %v, want ErrTruncatedInput", err)
		}
	})

	t.Run("empty loop", func(t *testing.T) {
		t.Parallel()
		descriptors, err := decodeSpliceDescriptors(newBitReader(nil))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(descriptors) != 0 {
			t.Errorf("got %d descriptors, want 0", len(descriptors))
		}
	})
}

func TestAvailDecode(t *testing.T) {
	t.Parallel()
	d := &AvailDescriptor{}
	body := []byte{0x43, 0x55, 0x45, 0x49, 0x00, 0x00, 0x00, 0x80}
	if err := d.decode(newBitReader(body)); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := d.ProviderAvailID(); got != 128 {
		t.Errorf("ProviderAvailID = %d, want 128", got)
	}
}

func TestDTMFReservedBits(t *testing.T) {
	t.Parallel()
	d := &DTMFDescriptor{}
	// reserved bits 0b11110
	body := []byte{0x43, 0x55, 0x45, 0x49, 0x14, 0x7E, 0x31, 0x34, 0x39}
	if err := d.decode(newBitReader(body)); !errors.Is(err, ErrReservedBits) {
		t.Errorf("err = %v, want ErrReservedBits", err)
	}
}
