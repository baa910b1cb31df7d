package register

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SELECTOR_MAX is the highest bit index of a vector register, spelled MAX
// in a selector.
const SELECTOR_MAX = VECTOR_BITS - 1

var _selectorRegexp = regexp.MustCompile(`^\[\s*(MAX|[0-9]+)\s*:\s*(MAX|[0-9]+)\s*\]$`)

// Selector is an inclusive range of vector register bits, Hi >= Lo.
type Selector struct {
	Hi uint
	Lo uint
}

// ParseSelector parses a "[hi:lo]" bit range. Either bound may be MAX.
func ParseSelector(text string) (sel Selector, err error) {
	match := _selectorRegexp.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		err = ErrSelector{Text: text, Err: ErrSelectorSyntax}
		return
	}

	bound := func(token string) (index uint, err error) {
		if token == "MAX" {
			index = SELECTOR_MAX
			return
		}
		value, err := strconv.ParseUint(token, 10, 16)
		if err != nil || value > SELECTOR_MAX {
			err = ErrSelector{Text: text, Err: ErrSelectorSyntax}
			return
		}
		index = uint(value)
		return
	}

	hi, err := bound(match[1])
	if err != nil {
		return
	}
	lo, err := bound(match[2])
	if err != nil {
		return
	}

	if hi < lo {
		err = ErrSelector{Text: text, Err: ErrSelectorSyntax}
		return
	}

	sel = Selector{Hi: hi, Lo: lo}
	return
}

// MustParseSelector is ParseSelector for constant selectors. It panics on
// a syntax error.
func MustParseSelector(text string) Selector {
	sel, err := ParseSelector(text)
	if err != nil {
		panic(err)
	}
	return sel
}

// Bits returns the number of bits in the range.
func (sel Selector) Bits() int {
	return int(sel.Hi-sel.Lo) + 1
}

func (sel Selector) String() string {
	hi := strconv.FormatUint(uint64(sel.Hi), 10)
	if sel.Hi == SELECTOR_MAX {
		hi = "MAX"
	}
	return fmt.Sprintf("[%v:%d]", hi, sel.Lo)
}
