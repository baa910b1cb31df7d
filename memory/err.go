package memory

import (
	"errors"

	"github.com/ezrec/simdcpu/translate"
)

var f = translate.From

var (
	ErrGranularity = errors.New(f("granularity must be a non-zero power of two"))
)
