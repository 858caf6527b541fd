package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFromPincode(t *testing.T) {
	cases := []struct {
		pincode string
		want    string
	}{
		{"110001", "Delhi"},
		{"121004", "Delhi"}, // overlaps Haryana; Delhi declared first
		{"143001", "Punjab"},
		{"226010", "Uttar Pradesh"},
		{"302015", "Rajasthan"},
		{"380001", "Gujarat"},
		{"400001", "Maharashtra"},
		{"500032", "Telangana"},
		{"560034", "Karnataka"},
		{"600020", "Tamil Nadu"},
		{"682001", "Kerala"},
		{"700001", "West Bengal"},
		{"751001", "Odisha"},
		{"781005", "Assam"},
		{"800001", "Bihar"},
		{"999999", OtherStates},
		{"000000", OtherStates},
		{"12", UnknownState},
		{"", UnknownState},
		{"abc123", UnknownState},
	}

	for _, tc := range cases {
		t.Run(tc.pincode, func(t *testing.T) {
			assert.Equal(t, tc.want, StateFromPincode(tc.pincode))
		})
	}
}

func TestStateFromPincodeTotal(t *testing.T) {
	// Every possible 3-digit prefix must resolve to a known state or the sentinel.
	known := make(map[string]bool)
	for _, r := range stateRanges {
		known[r.label] = true
	}
	known[OtherStates] = true

	for n := 0; n < 1000; n++ {
		got := StateFromPincode(fmt.Sprintf("%03d000", n))
		assert.True(t, known[got], "prefix %03d resolved to unexpected label %q", n, got)
	}
}

func TestDistrictFromPincode(t *testing.T) {
	cases := []struct {
		pincode string
		want    string
	}{
		{"400001", "Mumbai"},
		{"411038", "Mumbai"}, // inside Pune's range but Mumbai 400-421 is declared first
		{"440010", "Nagpur"},
		{"360005", "Rajkot"},
		{"380015", "Ahmedabad"},
		{"560068", "Bangalore"},
		{"600042", "Chennai"},
		{"226001", "Lucknow"},
		{"700091", "Kolkata"},
		{"302012", "Jaipur"},
		{"800020", "Patna"},
		{"110092", "Delhi"},
		{"999999", OtherDistrict},
		{"", UnknownDistrict},
		{"xx", UnknownDistrict},
	}

	for _, tc := range cases {
		t.Run(tc.pincode, func(t *testing.T) {
			assert.Equal(t, tc.want, DistrictFromPincode(tc.pincode))
		})
	}
}

func TestIsStateSentinel(t *testing.T) {
	assert.True(t, IsStateSentinel(OtherStates))
	assert.True(t, IsStateSentinel(UnknownState))
	assert.True(t, IsStateSentinel("Invalid Pincode"))
	assert.True(t, IsStateSentinel("Other State"))
	assert.True(t, IsStateSentinel(""))
	assert.False(t, IsStateSentinel("Maharashtra"))
	assert.False(t, IsStateSentinel("Delhi"))
}
