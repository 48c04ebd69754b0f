// File: netcfg/example_test.go
package netcfg_test

import (
	"fmt"

	"github.com/katalvlaran/routegen/netcfg"
)

// ExampleAuto derives the parameters for ten 2-pin nets on a 40×40 grid.
func ExampleAuto() {
	s := netcfg.Auto(40, 40, 10, 2)
	fmt.Printf("%d nets: %+v\n", s.Nets(), s[0].Config)
	fmt.Println("valid:", s.Validate() == nil)

	// Output:
	// 10 nets: {MinWL:5 MaxWL:30 WLLimit:60 PinNum:2 RerouteNum:120 Momentum1:0.85 Momentum2:1}
	// valid: true
}
