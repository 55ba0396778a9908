package util

import (
	"os"
	"strings"
)

// IsDebugEnabled reports whether TFSPROPS_DEBUG asks for debug output and
// returns the raw value of the variable.
func IsDebugEnabled() (bool, string) {
	debugValue, isDebugSet := os.LookupEnv("TFSPROPS_DEBUG")
	if !isDebugSet {
		return false, ""
	}
	switch strings.ToLower(debugValue) {
	case "false", "0", "no", "off", "":
		return false, debugValue
	default:
		return true, debugValue
	}
}
