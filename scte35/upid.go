package scte35

import "fmt"

// UPIDType is the segmentation_upid_type carried by a segmentation
// descriptor, identifying the format of the UPID bytes.
type UPIDType uint32

const (
	UPIDTypeNotUsed               UPIDType = 0x00
	UPIDTypeDeprecatedUserDefined UPIDType = 0x01
	UPIDTypeDeprecatedISCI        UPIDType = 0x02
	UPIDTypeAdID                  UPIDType = 0x03
	UPIDTypeUMID                  UPIDType = 0x04
	UPIDTypeDeprecatedISAN        UPIDType = 0x05
	UPIDTypeISAN                  UPIDType = 0x06
	UPIDTypeTribuneID             UPIDType = 0x07
	UPIDTypeTurnerID              UPIDType = 0x08
	UPIDTypeADI                   UPIDType = 0x09
	UPIDTypeEIDR                  UPIDType = 0x0A
	UPIDTypeATSCContentID         UPIDType = 0x0B
	UPIDTypeManagedPrivate        UPIDType = 0x0C
	UPIDTypeMultiple              UPIDType = 0x0D
	UPIDTypeADSInformation        UPIDType = 0x0E
	UPIDTypeURI                   UPIDType = 0x0F
)

var upidTypeNames = map[UPIDType]string{
	UPIDTypeNotUsed:               "NOT_USED",
	UPIDTypeDeprecatedUserDefined: "DEPRECATED_USER_DEFINED",
	UPIDTypeDeprecatedISCI:        "DEPRECATED_ISCI",
	UPIDTypeAdID:                  "AD_ID",
	UPIDTypeUMID:                  "UMID",
	UPIDTypeDeprecatedISAN:        "DEPRECATED_ISAN",
	UPIDTypeISAN:                  "ISAN",
	UPIDTypeTribuneID:             "TRIBUNE_ID",
	UPIDTypeTurnerID:              "TURNER_ID",
	UPIDTypeADI:                   "ADI",
	UPIDTypeEIDR:                  "EIDR",
	UPIDTypeATSCContentID:         "ATSC_CONTENT_ID",
	UPIDTypeManagedPrivate:        "MANAGED_PRIVATE",
	UPIDTypeMultiple:              "MULTIPLE",
	UPIDTypeADSInformation:        "ADS_INFORMATION",
	UPIDTypeURI:                   "URI",
}

// Valid reports whether t is a defined UPID type.
func (t UPIDType) Valid() bool {
	_, ok := upidTypeNames[t]
	return ok
}

// String returns the symbolic name of the UPID type.
func (t UPIDType) String() string {
	if name, ok := upidTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UPIDType(0x%02X)", uint32(t))
}
