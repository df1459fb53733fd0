package emsh

// listNode is an intrusive circular doubly-linked list node. A list is
// represented by a sentinel node whose next/prev point at the first and
// last real entries; an empty list's sentinel points at itself. All
// operations are O(1) and never allocate.
//
// Go has no container_of, so instead of a node pointing at its owning
// struct through pointer arithmetic, each node carries a direct
// back-pointer to the historyBlock that embeds it.
type listNode struct {
	prev, next *listNode
	owner      *historyBlock
}

func (s *listNode) reset() {
	s.prev = s
	s.next = s
}

func (s *listNode) empty() bool {
	return s.next == s
}

// unlink removes n from whatever list it is currently threaded into.
func (n *listNode) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = n
	n.next = n
}

// pushFront inserts n immediately after sentinel s.
func (s *listNode) pushFront(n *listNode) {
	n.prev = s
	n.next = s.next
	s.next.prev = n
	s.next = n
}

// pushBack inserts n immediately before sentinel s.
func (s *listNode) pushBack(n *listNode) {
	n.next = s
	n.prev = s.prev
	s.prev.next = n
	s.prev = n
}

// popFront unlinks and returns the node following sentinel s, or nil if
// the list is empty.
func (s *listNode) popFront() *listNode {
	if s.empty() {
		return nil
	}
	n := s.next
	n.unlink()
	return n
}

// popBack unlinks and returns the node preceding sentinel s, or nil if
// the list is empty.
func (s *listNode) popBack() *listNode {
	if s.empty() {
		return nil
	}
	n := s.prev
	n.unlink()
	return n
}
