package classify

import "strconv"

// Sentinel labels for unmatched or unparseable pincodes. The historical data
// used several spellings ("Other State", "Invalid Pincode"); new output uses
// these canonical ones only.
const (
	OtherStates     = "Other States"
	UnknownState    = "Unknown"
	OtherDistrict   = "Other District"
	UnknownDistrict = "Unknown District"
)

type pinRange struct {
	low, high int
	label     string
}

// stateRanges maps the first three pincode digits to a state. This is a
// deliberately coarse static table, not a canonical geo database. Order
// matters: ranges overlap (e.g. Delhi 110-140 vs Haryana 121-136) and the
// first match in declaration order wins.
var stateRanges = []pinRange{
	{110, 140, "Delhi"},
	{121, 136, "Haryana"},
	{140, 160, "Punjab"},
	{171, 177, "Himachal Pradesh"},
	{180, 194, "Jammu and Kashmir"},
	{201, 285, "Uttar Pradesh"},
	{248, 263, "Uttarakhand"},
	{301, 345, "Rajasthan"},
	{360, 396, "Gujarat"},
	{400, 445, "Maharashtra"},
	{450, 492, "Madhya Pradesh"},
	{500, 509, "Telangana"},
	{510, 535, "Andhra Pradesh"},
	{560, 591, "Karnataka"},
	{600, 643, "Tamil Nadu"},
	{682, 695, "Kerala"},
	{700, 743, "West Bengal"},
	{751, 770, "Odisha"},
	{781, 788, "Assam"},
	{800, 855, "Bihar"},
	{831, 835, "Jharkhand"},
}

// districtRanges is a finer table with known duplicate and overlapping
// entries carried over from the source data (e.g. Rajkot appears twice,
// Mumbai 400-421 shadows Pune 411-414). Resolution is first match in
// declaration order; do not reorder or dedupe without product sign-off.
var districtRanges = []pinRange{
	// Gujarat
	{360, 370, "Rajkot"},
	{380, 382, "Ahmedabad"},
	{390, 396, "Vadodara"},
	{360, 365, "Rajkot"},
	{370, 375, "Jamnagar"},
	{383, 389, "Gandhinagar"},
	// Maharashtra
	{400, 421, "Mumbai"},
	{411, 414, "Pune"},
	{440, 445, "Nagpur"},
	{422, 425, "Nashik"},
	{431, 432, "Aurangabad"},
	// Karnataka
	{560, 562, "Bangalore"},
	{570, 571, "Mysore"},
	{580, 582, "Hubli"},
	{575, 576, "Mangalore"},
	// Tamil Nadu
	{600, 603, "Chennai"},
	{641, 642, "Coimbatore"},
	{625, 626, "Madurai"},
	{620, 621, "Tiruchirappalli"},
	// Uttar Pradesh
	{226, 227, "Lucknow"},
	{208, 209, "Kanpur"},
	{282, 283, "Agra"},
	{221, 222, "Varanasi"},
	// West Bengal
	{700, 711, "Kolkata"},
	{711, 712, "Howrah"},
	{713, 714, "Hooghly"},
	// Rajasthan
	{302, 303, "Jaipur"},
	{342, 344, "Jodhpur"},
	{313, 314, "Udaipur"},
	{324, 325, "Kota"},
	{334, 335, "Bikaner"},
	// Bihar
	{800, 803, "Patna"},
	{823, 824, "Gaya"},
	{812, 813, "Bhagalpur"},
	{842, 843, "Muzaffarpur"},
	// Delhi
	{110, 140, "Delhi"},
}

// pinPrefix parses the first three characters of a pincode as an unsigned
// number. ok is false for short or non-numeric input.
func pinPrefix(pincode string) (int, bool) {
	if len(pincode) < 3 {
		return 0, false
	}
	n, err := strconv.Atoi(pincode[:3])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// StateFromPincode resolves a pincode to a coarse state label. Total and
// deterministic: any string is accepted and a sentinel is returned when the
// prefix is unparseable or matches no range.
func StateFromPincode(pincode string) string {
	n, ok := pinPrefix(pincode)
	if !ok {
		return UnknownState
	}
	for _, r := range stateRanges {
		if n >= r.low && n <= r.high {
			return r.label
		}
	}
	return OtherStates
}

// DistrictFromPincode resolves a pincode to a district label using the finer
// range table. Same sentinel behavior as StateFromPincode.
func DistrictFromPincode(pincode string) string {
	n, ok := pinPrefix(pincode)
	if !ok {
		return UnknownDistrict
	}
	for _, r := range districtRanges {
		if n >= r.low && n <= r.high {
			return r.label
		}
	}
	return OtherDistrict
}

// IsStateSentinel reports whether a state label is one of the placeholder
// values standing in for an unmatched classification. "Invalid Pincode" and
// "Other State" appear in documents written by older versions of the
// analysis and are treated the same.
func IsStateSentinel(state string) bool {
	switch state {
	case "", OtherStates, UnknownState, "Other State", "Invalid Pincode", "Unknown State":
		return true
	}
	return false
}
