package zone_test

import (
	"fmt"

	"github.com/monaa-go/monaa/zone"
)

// ExampleIntermediateZone_ToAns builds the same begin/end window shape
// match.Matcher assembles for a two-event match and projects it down to the
// fixed 3x3 answer zone.
func ExampleIntermediateZone_ToAns() {
	iz := zone.NewIntermediateZone(4)
	iz.Rebind(iz.Begin(), zone.NonStrictBound(0), zone.Strict(1.0))
	iz.Rebind(iz.End(), zone.Strict(1.0), zone.NonStrictBound(1.5))
	iz.UseAsNewest(iz.End())

	ans := iz.ToAns()
	fmt.Println("begin <=", ans.At(1, 0).Value)
	fmt.Println("end <=", ans.At(2, 0).Value)

	// Output:
	// begin <= 1
	// end <= 1.5
}
