package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntGroupsThousands(t *testing.T) {
	assert.Equal(t, "1,000", Int(1000))
	assert.Equal(t, "-1,000", Int(-1000))
}

func TestFloat(t *testing.T) {
	assert.Equal(t, "1.5", Float(1.5))
}

func TestStringIsQuoted(t *testing.T) {
	assert.Equal(t, `"hi"`, String("hi"))
}

func TestAritySingularPlural(t *testing.T) {
	assert.Equal(t, "1 argument", Arity(1))
	assert.Equal(t, "2 arguments", Arity(2))
	assert.Equal(t, "1,000 arguments", Arity(1000))
}
