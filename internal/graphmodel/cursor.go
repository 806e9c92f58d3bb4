package graphmodel

// Cursor is a seekable read position into an EdgeStore, matching spec.md
// §4.1: seek(index) positions the cursor, accessors read columnar fields,
// and advance() moves from a forward edge to its back edge.
type Cursor struct {
	store *EdgeStore
	at    EdgeIndex
	valid bool
}

// NewCursor returns an unseeked cursor over store.
func NewCursor(store *EdgeStore) *Cursor {
	return &Cursor{store: store}
}

// Seek positions the cursor at index. Returns ErrEdgeOutOfRange if index is
// not a valid edge.
func (c *Cursor) Seek(index EdgeIndex) error {
	if int(index) < 0 || int(index) >= c.store.Count() {
		c.valid = false
		return ErrEdgeOutOfRange
	}
	c.at = index
	c.valid = true
	return nil
}

// Advance moves the cursor from a forward edge to its back edge. Only
// defined when the cursor is currently positioned on the even (forward)
// index of a pair.
func (c *Cursor) Advance() error {
	if !c.valid {
		return ErrEdgeOutOfRange
	}
	if !c.at.IsForward() {
		return ErrOddEdgeAdvance
	}
	c.at = c.at.Flip()
	return nil
}

// Index returns the edge index the cursor is currently positioned at.
func (c *Cursor) Index() EdgeIndex { return c.at }

// From, To, LengthMM, Permission, BaseSpeed, Flags mirror the EdgeStore
// accessors at the cursor's current position.
func (c *Cursor) From() VertexIndex      { return c.store.From(c.at) }
func (c *Cursor) To() VertexIndex        { return c.store.To(c.at) }
func (c *Cursor) LengthMM() int64        { return c.store.LengthMM(c.at) }
func (c *Cursor) Permission() Permission { return c.store.Permission(c.at) }
func (c *Cursor) BaseSpeed() float64     { return c.store.BaseSpeed(c.at) }
func (c *Cursor) Flags() EdgeFlags       { return c.store.Flags(c.at) }
