package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage(DEFAULT_LANGUAGE))
	assert.Equal("slot 3 invalid", From("slot %d invalid", 3))
	assert.Equal("selector '[1:0]'", From("selector '%v'", "[1:0]"))
}

func TestSetLanguage_Invalid(t *testing.T) {
	assert := assert.New(t)

	assert.Error(SetLanguage("not a language tag!"))
	assert.NoError(SetLanguage(DEFAULT_LANGUAGE))
}
