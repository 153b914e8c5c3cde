package scte35

import "fmt"

// SegmentationType is the segmentation_type_id carried by a segmentation
// descriptor, per SCTE-35 Table 22.
type SegmentationType uint32

const (
	SegmentationTypeNotIndicated            SegmentationType = 0x00
	SegmentationTypeContentIdentification   SegmentationType = 0x01
	SegmentationTypeProgramStart            SegmentationType = 0x10
	SegmentationTypeProgramEnd              SegmentationType = 0x11
	SegmentationTypeProgramEarlyTermination SegmentationType = 0x12
	SegmentationTypeProgramBreakaway        SegmentationType = 0x13
	SegmentationTypeProgramResumption       SegmentationType = 0x14
	SegmentationTypeProgramRunoverPlanned   SegmentationType = 0x15
	SegmentationTypeProgramRunoverUnplanned SegmentationType = 0x16
	SegmentationTypeProgramOverlapStart     SegmentationType = 0x17
	SegmentationTypeProgramBlackoutOverride SegmentationType = 0x18
	SegmentationTypeProgramStartInProgress  SegmentationType = 0x19
	SegmentationTypeChapterStart            SegmentationType = 0x20
	SegmentationTypeChapterEnd              SegmentationType = 0x21
	SegmentationTypeBreakStart              SegmentationType = 0x22
	SegmentationTypeBreakEnd                SegmentationType = 0x23
	SegmentationTypeProviderAdStart         SegmentationType = 0x30
	SegmentationTypeProviderAdEnd           SegmentationType = 0x31
	SegmentationTypeDistributorAdStart      SegmentationType = 0x32
	SegmentationTypeDistributorAdEnd        SegmentationType = 0x33
	SegmentationTypeProviderPOStart         SegmentationType = 0x34
	SegmentationTypeProviderPOEnd           SegmentationType = 0x35
	SegmentationTypeDistributorPOStart      SegmentationType = 0x36
	SegmentationTypeDistributorPOEnd        SegmentationType = 0x37
	SegmentationTypeUnscheduledEventStart   SegmentationType = 0x40
	SegmentationTypeUnscheduledEventEnd     SegmentationType = 0x41
	SegmentationTypeNetworkStart            SegmentationType = 0x50
	SegmentationTypeNetworkEnd              SegmentationType = 0x51
)

var segmentationTypeNames = map[SegmentationType]string{
	SegmentationTypeNotIndicated:            "NOT_INDICATED",
	SegmentationTypeContentIdentification:   "CONTENT_IDENTIFICATION",
	SegmentationTypeProgramStart:            "PROGRAM_START",
	SegmentationTypeProgramEnd:              "PROGRAM_END",
	SegmentationTypeProgramEarlyTermination: "PROGRAM_EARLY_TERMINATION",
	SegmentationTypeProgramBreakaway:        "PROGRAM_BREAKAWAY",
	SegmentationTypeProgramResumption:       "PROGRAM_RESUMPTION",
	SegmentationTypeProgramRunoverPlanned:   "PROGRAM_RUNOVER_PLANNED",
	SegmentationTypeProgramRunoverUnplanned: "PROGRAM_RUNOVER_UNPLANNED",
	SegmentationTypeProgramOverlapStart:     "PROGRAM_OVERLAP_START",
	SegmentationTypeProgramBlackoutOverride: "PROGRAM_BLACKOUT_OVERRIDE",
	SegmentationTypeProgramStartInProgress:  "PROGRAM_START_IN_PROGRESS",
	SegmentationTypeChapterStart:            "CHAPTER_START",
	SegmentationTypeChapterEnd:              "CHAPTER_END",
	SegmentationTypeBreakStart:              "BREAK_START",
	SegmentationTypeBreakEnd:                "BREAK_END",
	SegmentationTypeProviderAdStart:         "PROVIDER_ADVERTISEMENT_START",
	SegmentationTypeProviderAdEnd:           "PROVIDER_ADVERTISEMENT_END",
	SegmentationTypeDistributorAdStart:      "DISTRIBUTOR_ADVERTISEMENT_START",
	SegmentationTypeDistributorAdEnd:        "DISTRIBUTOR_ADVERTISEMENT_END",
	SegmentationTypeProviderPOStart:         "PROVIDER_PLACEMENT_OPPORTUNITY_START",
	SegmentationTypeProviderPOEnd:           "PROVIDER_PLACEMENT_OPPORTUNITY_END",
	SegmentationTypeDistributorPOStart:      "DISTRIBUTOR_PLACEMENT_OPPORTUNITY_START",
	SegmentationTypeDistributorPOEnd:        "DISTRIBUTOR_PLACEMENT_OPPORTUNITY_END",
	SegmentationTypeUnscheduledEventStart:   "UNSCHEDULED_EVENT_START",
	SegmentationTypeUnscheduledEventEnd:     "UNSCHEDULED_EVENT_END",
	SegmentationTypeNetworkStart:            "NETWORK_START",
	SegmentationTypeNetworkEnd:              "NETWORK_END",
}

// Valid reports whether t is a defined segmentation type.
func (t SegmentationType) Valid() bool {
	_, ok := segmentationTypeNames[t]
	return ok
}

// String returns the symbolic name of the segmentation type.
func (t SegmentationType) String() string {
	if name, ok := segmentationTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SegmentationType(0x%02X)", uint32(t))
}
