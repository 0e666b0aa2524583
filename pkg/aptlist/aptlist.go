// Package aptlist implements an apartment registry as a singly linked list.
//
// Each record pairs an apartment number with a tenant.
// The zero value of List is an empty list ready to use.
package aptlist

import (
	"fmt"
	"iter"
	"strings"
)

// EndOfList terminates the textual rendering of a List.
const EndOfList = "nullptr"

// Record is a single apartment entry of the registry.
type Record[T any] struct {
	Number int
	Tenant T
}

type List[T comparable] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

type node[T comparable] struct {
	number int
	tenant T
	next   *node[T]
}

// New creates a list that holds the given records in order.
func New[T comparable](records ...Record[T]) *List[T] {
	l := &List[T]{}
	for _, r := range records {
		l.PushTail(r.Number, r.Tenant)
	}
	return l
}

// Clone makes a deep copy of the list.
// The copy shares no records with its source.
func (l *List[T]) Clone() *List[T] {
	var c List[T]
	c.PushTailList(l)
	return &c
}

// Assign replaces the content of the list with a copy of oth.
// Assigning a list to itself leaves it untouched.
func (l *List[T]) Assign(oth *List[T]) {
	if l == oth {
		return
	}
	l.Clear()
	l.PushTailList(oth)
}

func (l *List[T]) PushTail(number int, tenant T) {
	n := &node[T]{number: number, tenant: tenant}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// PushTailList appends a copy of every record of oth, keeping their order.
func (l *List[T]) PushTailList(oth *List[T]) {
	if oth == nil {
		return
	}
	// the length is captured up front so a list can be appended to itself
	current, count := oth.head, oth.length
	for i := 0; i < count; i++ {
		l.PushTail(current.number, current.tenant)
		current = current.next
	}
}

func (l *List[T]) PushHead(number int, tenant T) {
	n := &node[T]{number: number, tenant: tenant, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// PushHeadList prepends the records of oth one by one, reading oth from front to back.
// Each record becomes the new head, so oth's records end up in reverse order:
// merging [A B C] into [X] yields [C B A X].
func (l *List[T]) PushHeadList(oth *List[T]) {
	if oth == nil {
		return
	}
	current, count := oth.head, oth.length
	for i := 0; i < count; i++ {
		l.PushHead(current.number, current.tenant)
		current = current.next
	}
}

// PopHead removes the first record and returns it.
func (l *List[T]) PopHead() (Record[T], error) {
	if l.head == nil {
		return Record[T]{}, ErrEmptyContainer
	}
	first := l.head
	l.head = first.next
	first.next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return first.record(), nil
}

// PopTail removes the last record and returns it.
// Records only link forward, so PopTail walks the whole list.
func (l *List[T]) PopTail() (Record[T], error) {
	if l.head == nil {
		return Record[T]{}, ErrEmptyContainer
	}
	last := l.tail
	if l.head == l.tail {
		l.head = nil
		l.tail = nil
		l.length--
		return last.record(), nil
	}
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	prev.next = nil
	l.tail = prev
	l.length--
	return last.record(), nil
}

// Delete removes every record whose tenant equals the given one,
// and reports how many records were removed.
func (l *List[T]) Delete(tenant T) int {
	var (
		removed int
		prev    *node[T]
		current = l.head
	)
	for current != nil {
		next := current.next
		if current.tenant != tenant {
			prev = current
			current = next
			continue
		}
		if prev == nil {
			l.head = next
		} else {
			prev.next = next
		}
		if current == l.tail {
			l.tail = prev
		}
		current.next = nil
		l.length--
		removed++
		current = next
	}
	return removed
}

// Update overwrites the tenant of the first record with the given apartment number.
// When no record has that number, ErrNotFound is returned and nothing is inserted.
func (l *List[T]) Update(number int, tenant T) error {
	n, ok := l.findNumber(number)
	if !ok {
		return ErrNotFound.F("apartment number %d", number)
	}
	n.tenant = tenant
	return nil
}

// Add is an alias of Update.
// Despite its name, it never inserts a record.
func (l *List[T]) Add(number int, tenant T) error {
	return l.Update(number, tenant)
}

// Find returns the first record with the given apartment number.
func (l *List[T]) Find(number int) (Record[T], error) {
	n, ok := l.findNumber(number)
	if !ok {
		return Record[T]{}, ErrNotFound.F("apartment number %d", number)
	}
	return n.record(), nil
}

func (l *List[T]) findNumber(number int) (*node[T], bool) {
	for current := l.head; current != nil; current = current.next {
		if current.number == number {
			return current, true
		}
	}
	return nil, false
}

// Get returns the tenant at the given position.
// The returned value is a copy, use Set to change the tenant in place.
func (l *List[T]) Get(index int) (T, error) {
	n, err := l.nodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.tenant, nil
}

// Set overwrites the tenant at the given position.
func (l *List[T]) Set(index int, tenant T) error {
	n, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	n.tenant = tenant
	return nil
}

// At returns the record at the given position.
func (l *List[T]) At(index int) (Record[T], error) {
	n, err := l.nodeAt(index)
	if err != nil {
		return Record[T]{}, err
	}
	return n.record(), nil
}

func (l *List[T]) nodeAt(index int) (*node[T], error) {
	if index < 0 || l.length <= index {
		return nil, ErrIndexOutOfRange.F("index %d, length %d", index, l.length)
	}
	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current, nil
}

// Len returns the number of records in the list.
func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Clear removes every record from the list.
func (l *List[T]) Clear() {
	for l.head != nil {
		_, _ = l.PopHead()
	}
}

// Iter yields the records from front to back.
// A nil list iterates as an empty one.
func (l *List[T]) Iter() iter.Seq2[int, Record[T]] {
	return func(yield func(int, Record[T]) bool) {
		if l == nil {
			return
		}
		var index int
		for current := l.head; current != nil; current = current.next {
			if !yield(index, current.record()) {
				return
			}
			index++
		}
	}
}

func (l *List[T]) ToSlice() []Record[T] {
	var rs []Record[T]
	for _, r := range l.Iter() {
		rs = append(rs, r)
	}
	return rs
}

// String renders the list as "Apartment {number}: {tenant} -> " fragments,
// closed by EndOfList.
func (l *List[T]) String() string {
	var b strings.Builder
	for _, r := range l.Iter() {
		_, _ = fmt.Fprintf(&b, "Apartment %d: %v -> ", r.Number, r.Tenant)
	}
	b.WriteString(EndOfList)
	return b.String()
}

func (n *node[T]) record() Record[T] {
	return Record[T]{Number: n.number, Tenant: n.tenant}
}
