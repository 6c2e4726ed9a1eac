// Command cartroute plans delivery cart routes from a deployment file and
// inspects the entry store.
//
//	cartroute plan --stops Dropoff,Atrium,C024
//	cartroute matrix
//	cartroute entries --db /var/lib/cartroute/eeprom
//
// The deployment file comes from --config or CARTROUTE_CONFIG; the log level
// from --log-level or CARTROUTE_LOG_LEVEL.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
