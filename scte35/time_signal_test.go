package scte35

import (
	"errors"
	"testing"
	"time"
)

func TestTimeSignalDecode(t *testing.T) {
	t.Parallel()

	t.Run("immediate", func(t *testing.T) {
		t.Parallel()
		cmd := &TimeSignal{}
		if err := cmd.decode(newBitReader([]byte{0x00})); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !cmd.IsImmediate() {
			t.Error("IsImmediate = false, want true")
		}
		if _, err := cmd.PTSTime(); !errors.Is(err, ErrFieldNotApplicable) {
			t.Errorf("PTSTime err = %v, want ErrFieldNotApplicable", err)
		}
	})

	t.Run("max pts", func(t *testing.T) {
		t.Parallel()
		cmd := &TimeSignal{}
		if err := cmd.decode(newBitReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if cmd.IsImmediate() {
			t.Error("IsImmediate = true, want false")
		}
		pts, err := cmd.PTSTime()
		if err != nil {
			t.Fatalf("PTSTime failed: %v", err)
		}
		if pts != 0x1FFFFFFFF {
			t.Errorf("PTSTime = 0x%X, want 0x1FFFFFFFF", pts)
		}
	})

	t.Run("pts of one second", func(t *testing.T) {
		t.Parallel()
		// time_specified=1, reserved 0x3F, pts_time 90000
		cmd := &TimeSignal{}
		if err := cmd.decode(newBitReader([]byte{0xFE, 0x00, 0x01, 0x5F, 0x90})); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		pts, err := cmd.PTSTime()
		if err != nil {
			t.Fatalf("PTSTime failed: %v", err)
		}
		if pts != 90000 {
			t.Errorf("PTSTime = %d, want 90000", pts)
		}
		if got := cmd.Duration(); got != time.Second {
			t.Errorf("Duration = %v, want 1s", got)
		}
	})

	t.Run("reserved violation", func(t *testing.T) {
		t.Parallel()
		cmd := &TimeSignal{}
		err := cmd.decode(newBitReader([]byte{0xF7, 0xFF, 0xFF, 0xFF, 0xFF}))
		if !errors.Is(err, ErrReservedBits) {
			t.Errorf("err = %v, want ErrReservedBits", err)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()
		cmd := &TimeSignal{}
		err := cmd.decode(newBitReader([]byte{0xFE, 0x00, 0x01}))
		if !errors.Is(err, ErrTruncatedInput) {
			t.Errorf("err = %v, want ErrTruncatedInput", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		cmd := &TimeSignal{}
		err := cmd.decode(newBitReader(nil))
		if !errors.Is(err, ErrTruncatedInput) {
			t.Errorf("err = %v, want ErrTruncatedInput", err)
		}
	})
}
