package hlstag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsiec/cuetone/scte35"
)

// A provider placement opportunity cue captured from a live manifest, used as
// the CUE attribute across the table tests below.
const sampleCue = "/DBfAACfwEAM///wBQb/8ZPsgQBJAhxDVUVJOeVyXX//AAD4J5cICAAFH4I55XJdNAIDAilDVUVJAAAAAH+/DBpWTU5VAUB2w2S4qhHoiztw3y+Gas4B+olIUQEAAJOLlf8="

func TestAttributes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		line string
		want map[string]string
	}{
		{
			"unquoted cue with elapsed",
			"#EXT-X-SCTE35:TYPE=0x34,CUE=" + sampleCue + ",ELAPSED=0.000",
			map[string]string{"TYPE": "0x34", "CUE": sampleCue, "ELAPSED": "0.000"},
		},
		{
			"quoted cue with duration and upid",
			`#EXT-X-SCTE35:TYPE=0x34,DURATION=60.060,CUE-OUT=YES,UPID="0x08:0x9425BC",CUE="` + sampleCue + `",ID="f6UrRd"`,
			map[string]string{
				"TYPE":     "0x34",
				"DURATION": "60.060",
				"CUE-OUT":  "YES",
				"UPID":     "0x08:0x9425BC",
				"CUE":      sampleCue,
				"ID":       "f6UrRd",
			},
		},
		{
			"network start with time",
			`#EXT-X-SCTE35:TYPE=0x50,TIME=1448928000.000,ELAPSED=32400.0,CUE="` + sampleCue + `",ID="e+CuqI"`,
			map[string]string{
				"TYPE":    "0x50",
				"TIME":    "1448928000.000",
				"ELAPSED": "32400.0",
				"CUE":     sampleCue,
				"ID":      "e+CuqI",
			},
		},
		{
			"cue-in",
			`#EXT-X-SCTE35:TYPE=0x35,CUE-IN=YES,CUE="` + sampleCue + `",ID="f6UrRd"`,
			map[string]string{"TYPE": "0x35", "CUE-IN": "YES", "CUE": sampleCue, "ID": "f6UrRd"},
		},
		{
			"blackout maybe",
			`#EXT-X-SCTE35:TYPE=0x10,ELAPSED=0.0,UPID="0x08:0x9425",BLACKOUT=MAYBE,CUE="` + sampleCue + `",ID="dAQ"`,
			map[string]string{
				"TYPE":     "0x10",
				"ELAPSED":  "0.0",
				"UPID":     "0x08:0x9425",
				"BLACKOUT": "MAYBE",
				"CUE":      sampleCue,
				"ID":       "dAQ",
			},
		},
		{
			"segne",
			"#EXT-X-SCTE35:TYPE=0x34,CUE=" + sampleCue + `,ELAPSED=114.114,SEGNE="3:3"`,
			map[string]string{"TYPE": "0x34", "CUE": sampleCue, "ELAPSED": "114.114", "SEGNE": "3:3"},
		},
		{
			"decimal type",
			"#EXT-X-SCTE35:TYPE=52,CUE=" + sampleCue,
			map[string]string{"TYPE": "52", "CUE": sampleCue},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			attrs, err := Attributes(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, attrs)
		})
	}
}

func TestAttributesBadTags(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		line string
		want error
	}{
		{
			"missing hash",
			"EXT-X-SCTE35:TYPE=0x34,CUE=" + sampleCue,
			ErrNotCueTag,
		},
		{
			"missing prefix",
			"TYPE=0x34,CUE=" + sampleCue,
			ErrNotCueTag,
		},
		{
			"missing cue attribute",
			`#EXT-X-SCTE35:TYPE=0x10,ELAPSED=0.0,UPID="0x08:0x9425",BLACKOUT=MAYBE,ID="dAQ"`,
			ErrMissingCue,
		},
		{
			"empty cue attribute",
			"#EXT-X-SCTE35:TYPE=0x34,CUE=",
			ErrMissingCue,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Attributes(tc.line)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAttributesUPIDNotMistakenForID(t *testing.T) {
	t.Parallel()
	// UPID= must not satisfy the ID attribute.
	attrs, err := Attributes(`#EXT-X-SCTE35:UPID="0x08:0x9425",CUE=` + sampleCue)
	require.NoError(t, err)
	assert.Equal(t, "0x08:0x9425", attrs["UPID"])
	assert.NotContains(t, attrs, "ID")
}

func TestParse(t *testing.T) {
	t.Parallel()
	line := `#EXT-X-SCTE35:TYPE=0x34,DURATION=60.060,CUE-OUT=YES,UPID="0x08:0x9425BC",CUE="` + sampleCue + `",ID="f6UrRd"`
	tag, err := Parse(line)
	require.NoError(t, err)

	cueType, err := tag.Type()
	require.NoError(t, err)
	assert.Equal(t, scte35.SegmentationTypeProviderPOStart, cueType)

	duration, err := tag.Duration()
	require.NoError(t, err)
	assert.Equal(t, 60.06, duration)

	cueOut, err := tag.CueOut()
	require.NoError(t, err)
	assert.Equal(t, "YES", cueOut)

	upid, err := tag.UPID()
	require.NoError(t, err)
	assert.Equal(t, "0x08:0x9425BC", upid)

	id, err := tag.ID()
	require.NoError(t, err)
	assert.Equal(t, "f6UrRd", id)

	// Attributes the tag does not carry.
	_, err = tag.Elapsed()
	assert.ErrorIs(t, err, ErrAttributeNotPresent)
	_, err = tag.Time()
	assert.ErrorIs(t, err, ErrAttributeNotPresent)
	_, err = tag.Blackout()
	assert.ErrorIs(t, err, ErrAttributeNotPresent)
	_, err = tag.CueIn()
	assert.ErrorIs(t, err, ErrAttributeNotPresent)
	_, err = tag.Segne()
	assert.ErrorIs(t, err, ErrAttributeNotPresent)

	// The embedded splice_info_section.
	section := tag.Cue()
	require.NotNil(t, section)
	assert.Equal(t, uint64(2680176652), section.PTSAdjustment())

	cmd, ok := section.Command().(*scte35.TimeSignal)
	require.True(t, ok, "command is %T, want *scte35.TimeSignal", section.Command())
	pts, err := cmd.PTSTime()
	require.NoError(t, err)
	assert.Equal(t, uint64(8347970689), pts)

	descriptors := section.Descriptors()
	require.Len(t, descriptors, 2)
	seg, ok := descriptors[0].(*scte35.SegmentationDescriptor)
	require.True(t, ok)
	assert.Equal(t, uint32(971338333), seg.SegmentationEventID())
	segType, err := seg.SegmentationTypeID()
	require.NoError(t, err)
	// The binary cue and the TYPE attribute carry the same type id.
	assert.Equal(t, cueType, segType)
	num, err := seg.SegmentNum()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), num)
	expected, err := seg.SegmentsExpected()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), expected)
}

func TestParseDecimalType(t *testing.T) {
	t.Parallel()
	tag, err := Parse("#EXT-X-SCTE35:TYPE=52,CUE=" + sampleCue)
	require.NoError(t, err)
	cueType, err := tag.Type()
	require.NoError(t, err)
	assert.Equal(t, scte35.SegmentationTypeProviderPOStart, cueType)
}

func TestParseWithoutType(t *testing.T) {
	t.Parallel()
	tag, err := Parse("#EXT-X-SCTE35:CUE=" + sampleCue)
	require.NoError(t, err)
	_, err = tag.Type()
	assert.ErrorIs(t, err, ErrAttributeNotPresent)
}

func TestParseUnknownType(t *testing.T) {
	t.Parallel()
	_, err := Parse("#EXT-X-SCTE35:TYPE=0x99,CUE=" + sampleCue)
	assert.ErrorIs(t, err, scte35.ErrUnknownEnumValue)
}

func TestParseCorruptCue(t *testing.T) {
	t.Parallel()
	// Valid base64, not a splice_info_section.
	_, err := Parse("#EXT-X-SCTE35:CUE=aGVsbG8gd29ybGQh")
	assert.ErrorIs(t, err, scte35.ErrInvalidTableID)
}

func TestParseNotATag(t *testing.T) {
	t.Parallel()
	_, err := Parse("#EXTINF:6.006,")
	assert.ErrorIs(t, err, ErrNotCueTag)
}
