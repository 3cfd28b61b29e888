package neffcalc

// CheckFlags only returns the error.
func CheckFlags(flags *CmdFlag) error {
	_, err := checkFlags(flags)
	return err
}

var MaskNames = maskNames
