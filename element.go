package vector

import "github.com/PotatoMaster101/vector/alloc"

// Element is one owned, independently allocated byte buffer.
//
// While stored in a Vector, the Vector owns the element. Delete transfers
// ownership to the caller, who becomes responsible for eventually calling
// Release to return the buffer's reservation to the allocation provider.
type Element struct {
	buf      []byte
	provider alloc.Provider
}

// Bytes returns the element's contents. The slice is owned by the element
// and must not be used after Release.
func (e *Element) Bytes() []byte {
	if e == nil {
		return nil
	}
	return e.buf
}

// Len returns the element's size in bytes.
func (e *Element) Len() int {
	if e == nil {
		return 0
	}
	return len(e.buf)
}

// Release returns the element's reservation to the allocation provider and
// drops the buffer. Safe to call more than once.
func (e *Element) Release() {
	if e == nil || e.buf == nil {
		return
	}
	e.provider.Release(len(e.buf))
	e.buf = nil
}
