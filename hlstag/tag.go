// Package hlstag parses the #EXT-X-SCTE35 HLS manifest tag, which carries a
// Base64-encoded SCTE-35 splice_info_section in its CUE attribute alongside
// auxiliary text attributes. In practice the quoted-string attributes may or
// may not carry quotation marks, so extraction is regex-based rather than a
// strict attribute-list parse.
package hlstag

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zsiec/cuetone/scte35"
)

const tagPrefix = "#EXT-X-SCTE35:"

var (
	// ErrNotCueTag indicates the line is not an #EXT-X-SCTE35 tag.
	ErrNotCueTag = errors.New("hlstag: not an #EXT-X-SCTE35 tag")

	// ErrMissingCue indicates the tag lacks the required CUE attribute.
	ErrMissingCue = errors.New("hlstag: tag is missing the required CUE attribute")

	// ErrAttributeNotPresent indicates an accessor was invoked for an
	// optional attribute the tag does not carry.
	ErrAttributeNotPresent = errors.New("hlstag: attribute not present")
)

// Attribute extraction patterns per SCTE-35 2017 section 12.2. Each is
// anchored to an attribute boundary so that e.g. UPID= never matches as ID=.
var (
	cueRe      = regexp.MustCompile(`(?:^|,)CUE="?((?:[A-Za-z0-9+/]{4})+(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?)"?`)
	durationRe = regexp.MustCompile(`(?:^|,)DURATION=([0-9]+(?:\.[0-9]+)?)`)
	elapsedRe  = regexp.MustCompile(`(?:^|,)ELAPSED=([0-9]+(?:\.[0-9]+)?)`)
	idRe       = regexp.MustCompile(`(?:^|,)ID="([^"]+)"`)
	timeRe     = regexp.MustCompile(`(?:^|,)TIME=([0-9]+(?:\.[0-9]+)?)`)
	typeHexRe  = regexp.MustCompile(`(?:^|,)TYPE=(0[xX][0-9A-Fa-f]+)`)
	typeDecRe  = regexp.MustCompile(`(?:^|,)TYPE=([0-9]+)`)
	upidRe     = regexp.MustCompile(`(?:^|,)UPID="?(0[xX][0-9A-Fa-f]+:0[xX][0-9A-Fa-f]+)"?`)
	blackoutRe = regexp.MustCompile(`(?:^|,)BLACKOUT=(YES|NO|MAYBE)`)
	cueOutRe   = regexp.MustCompile(`(?:^|,)CUE-OUT=(YES|NO|CONT)`)
	cueInRe    = regexp.MustCompile(`(?:^|,)CUE-IN=(YES|NO)`)
	segneRe    = regexp.MustCompile(`(?:^|,)SEGNE="?([0-9]+:[0-9]+)"?`)
)

var optionalAttrs = []struct {
	name string
	re   *regexp.Regexp
}{
	{"DURATION", durationRe},
	{"ELAPSED", elapsedRe},
	{"ID", idRe},
	{"TIME", timeRe},
	{"UPID", upidRe},
	{"BLACKOUT", blackoutRe},
	{"CUE-OUT", cueOutRe},
	{"CUE-IN", cueInRe},
	{"SEGNE", segneRe},
}

// Attributes extracts the raw attribute values from an #EXT-X-SCTE35 tag
// line. Numeric attributes are returned in their text form. The CUE
// attribute is required; all others are optional.
func Attributes(line string) (map[string]string, error) {
	params, ok := strings.CutPrefix(line, tagPrefix)
	if !ok {
		return nil, ErrNotCueTag
	}

	attrs := make(map[string]string)

	m := cueRe.FindStringSubmatch(params)
	if m == nil {
		return nil, ErrMissingCue
	}
	attrs["CUE"] = m[1]

	// TYPE may be hex (0x34) or decimal; try hex first.
	if m := typeHexRe.FindStringSubmatch(params); m != nil {
		attrs["TYPE"] = m[1]
	} else if m := typeDecRe.FindStringSubmatch(params); m != nil {
		attrs["TYPE"] = m[1]
	}

	for _, attr := range optionalAttrs {
		if m := attr.re.FindStringSubmatch(params); m != nil {
			attrs[attr.name] = m[1]
		}
	}
	return attrs, nil
}

// CueTag is a parsed #EXT-X-SCTE35 tag. The decoded splice_info_section is
// always present; optional attributes are exposed through accessors that
// fail with ErrAttributeNotPresent when the tag does not carry them.
type CueTag struct {
	section  *scte35.SpliceInfoSection
	duration *float64
	elapsed  *float64
	time     *float64
	id       *string
	cueType  *scte35.SegmentationType
	upid     *string
	blackout *string
	cueOut   *string
	cueIn    *string
	segne    *string
}

// Parse parses one #EXT-X-SCTE35 tag line, decoding the Base64 CUE payload
// into a splice_info_section.
func Parse(line string) (*CueTag, error) {
	attrs, err := Attributes(line)
	if err != nil {
		return nil, err
	}

	payload, err := base64.StdEncoding.DecodeString(attrs["CUE"])
	if err != nil {
		return nil, fmt.Errorf("hlstag: decoding CUE attribute: %w", err)
	}
	section, err := scte35.DecodeBytes(payload)
	if err != nil {
		return nil, fmt.Errorf("hlstag: decoding CUE payload: %w", err)
	}
	tag := &CueTag{section: section}

	if v, ok := attrs["TYPE"]; ok {
		n, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("hlstag: parsing TYPE attribute: %w", err)
		}
		segType := scte35.SegmentationType(n)
		if !segType.Valid() {
			return nil, fmt.Errorf("%w: TYPE attribute 0x%02X", scte35.ErrUnknownEnumValue, n)
		}
		tag.cueType = &segType
	}
	if tag.duration, err = floatAttr(attrs, "DURATION"); err != nil {
		return nil, err
	}
	if tag.elapsed, err = floatAttr(attrs, "ELAPSED"); err != nil {
		return nil, err
	}
	if tag.time, err = floatAttr(attrs, "TIME"); err != nil {
		return nil, err
	}
	tag.id = stringAttr(attrs, "ID")
	tag.upid = stringAttr(attrs, "UPID")
	tag.blackout = stringAttr(attrs, "BLACKOUT")
	tag.cueOut = stringAttr(attrs, "CUE-OUT")
	tag.cueIn = stringAttr(attrs, "CUE-IN")
	tag.segne = stringAttr(attrs, "SEGNE")
	return tag, nil
}

func floatAttr(attrs map[string]string, name string) (*float64, error) {
	v, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("hlstag: parsing %s attribute: %w", name, err)
	}
	return &f, nil
}

func stringAttr(attrs map[string]string, name string) *string {
	v, ok := attrs[name]
	if !ok {
		return nil
	}
	return &v
}

// Cue returns the decoded splice_info_section from the CUE attribute.
func (t *CueTag) Cue() *scte35.SpliceInfoSection { return t.section }

// Duration returns the DURATION attribute: the duration in seconds of the
// signaled sequence defined by the CUE.
func (t *CueTag) Duration() (float64, error) {
	if t.duration == nil {
		return 0, fmt.Errorf("%w: DURATION", ErrAttributeNotPresent)
	}
	return *t.duration, nil
}

// Elapsed returns the ELAPSED attribute: the offset in seconds from the CUE
// of the earliest presentation time of the HLS media segment that follows.
func (t *CueTag) Elapsed() (float64, error) {
	if t.elapsed == nil {
		return 0, fmt.Errorf("%w: ELAPSED", ErrAttributeNotPresent)
	}
	return *t.elapsed, nil
}

// Time returns the TIME attribute: the UTC start time in seconds of the
// signaled sequence.
func (t *CueTag) Time() (float64, error) {
	if t.time == nil {
		return 0, fmt.Errorf("%w: TIME", ErrAttributeNotPresent)
	}
	return *t.time, nil
}

// ID returns the ID attribute, a unique value identifying the CUE.
func (t *CueTag) ID() (string, error) {
	if t.id == nil {
		return "", fmt.Errorf("%w: ID", ErrAttributeNotPresent)
	}
	return *t.id, nil
}

// Type returns the TYPE attribute: the segmentation type id from the
// segmentation descriptor, carried redundantly in text form for display and
// cross-checking.
func (t *CueTag) Type() (scte35.SegmentationType, error) {
	if t.cueType == nil {
		return 0, fmt.Errorf("%w: TYPE", ErrAttributeNotPresent)
	}
	return *t.cueType, nil
}

// UPID returns the UPID attribute: the segmentation_upid_type and
// segmentation_upid as colon-separated hex values.
func (t *CueTag) UPID() (string, error) {
	if t.upid == nil {
		return "", fmt.Errorf("%w: UPID", ErrAttributeNotPresent)
	}
	return *t.upid, nil
}

// Blackout returns the BLACKOUT attribute: YES, NO or MAYBE.
func (t *CueTag) Blackout() (string, error) {
	if t.blackout == nil {
		return "", fmt.Errorf("%w: BLACKOUT", ErrAttributeNotPresent)
	}
	return *t.blackout, nil
}

// CueOut returns the CUE-OUT attribute: YES, NO or CONT.
func (t *CueTag) CueOut() (string, error) {
	if t.cueOut == nil {
		return "", fmt.Errorf("%w: CUE-OUT", ErrAttributeNotPresent)
	}
	return *t.cueOut, nil
}

// CueIn returns the CUE-IN attribute: YES or NO.
func (t *CueTag) CueIn() (string, error) {
	if t.cueIn == nil {
		return "", fmt.Errorf("%w: CUE-IN", ErrAttributeNotPresent)
	}
	return *t.cueIn, nil
}

// Segne returns the SEGNE attribute: seg_num and seg_expected as
// colon-delimited decimal integers.
func (t *CueTag) Segne() (string, error) {
	if t.segne == nil {
		return "", fmt.Errorf("%w: SEGNE", ErrAttributeNotPresent)
	}
	return *t.segne, nil
}
