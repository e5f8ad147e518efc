package steno

import "fmt"

var errNoDash = fmt.Errorf("stroke has no vowel, star, or explicit dash")

func errOutOfOrder(k Key) error {
	return fmt.Errorf("key %q is out of steno order", k.Letter())
}

func errBadSymbol(ch byte) error {
	return fmt.Errorf("unrecognized steno symbol %q", ch)
}
