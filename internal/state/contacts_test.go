package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContacts_AssignAndRelease(t *testing.T) {
	assert := assert.New(t)

	c := NewContacts[string]()
	a := c.ID("left")
	assert.Equal(a, c.ID("left"))
	b := c.ID("right")
	assert.NotEqual(a, b)
	assert.Equal(2, c.Len())

	id, ok := c.Release("left")
	assert.True(ok)
	assert.Equal(a, id)
	_, ok = c.Lookup("left")
	assert.False(ok)

	assert.NotEqual(a, c.ID("left"), "a new placement gets a new id")
}
