package internal

import (
	"maps"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(
		IterSeqLabel("odd", IterSeqMap(slices.Values([]int{1, 3}), strconv.Itoa)),
		IterSeqLabel("even", IterSeqMap(slices.Values([]int{2}), strconv.Itoa)),
	)

	var keys, values []string
	for key, value := range seq {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]string{"odd", "odd", "even"}, keys)
	assert.Equal([]string{"1", "3", "2"}, values)

	// Early stop.
	for key := range seq {
		assert.Equal("odd", key)
		break
	}

	assert.Len(maps.Collect(IterSeq2Concat[string, string]()), 0)
}
