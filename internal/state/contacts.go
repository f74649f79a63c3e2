package state

import (
	"sync/atomic"
)

// lastContact is shared by every registry so ids never repeat in a process.
var lastContact uint64

func nextContact() ContactID {
	return ContactID(atomic.AddUint64(&lastContact, 1))
}

// Contacts assigns integer ids to opaque host contact handles. The host only
// needs a comparable handle; the id is assigned at the contact's first sample
// and forgotten when the contact is released.
type Contacts[K comparable] struct {
	ids map[K]ContactID
}

func NewContacts[K comparable]() *Contacts[K] {
	return &Contacts[K]{ids: make(map[K]ContactID)}
}

// ID returns the id for handle, assigning a fresh one on first use.
func (c *Contacts[K]) ID(handle K) ContactID {
	if id, ok := c.ids[handle]; ok {
		return id
	}
	id := nextContact()
	c.ids[handle] = id
	return id
}

// Lookup returns the id for handle without assigning one.
func (c *Contacts[K]) Lookup(handle K) (ContactID, bool) {
	id, ok := c.ids[handle]
	return id, ok
}

// Release forgets handle and returns the id it had.
func (c *Contacts[K]) Release(handle K) (ContactID, bool) {
	id, ok := c.ids[handle]
	delete(c.ids, handle)
	return id, ok
}

// Len is the number of contacts currently down.
func (c *Contacts[K]) Len() int { return len(c.ids) }
