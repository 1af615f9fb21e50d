// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue, carrying events
// from the platform driver to the engine. It must be initialized using
// [Queue.Init] before use. The driver calls Send as platform callbacks
// fire; the engine drains it with NextEvent once per tick.
type Queue struct {
	head atomic.Pointer[queueNode]
	tail atomic.Pointer[queueNode]
	len  atomic.Uint64
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &queueNode{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueNode struct {
	next atomic.Pointer[queueNode]
	v    Event
}

var queueNodePool = sync.Pool{
	New: func() any { return &queueNode{} },
}

// NextEvent removes and returns the next event in the queue.
// The second return value is false if the queue is empty.
func (q *Queue) NextEvent() (Event, bool) {
	var first, last, firstnext *queueNode
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return Event{}, false
				}
				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(^uint64(0))
					queueNodePool.Put(first)
					return v, true
				}
			}
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	i := queueNodePool.Get().(*queueNode)
	i.next.Store(nil)
	i.v = ev

	var last, lastnext *queueNode
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, i) {
					q.tail.CompareAndSwap(last, i)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// Len returns the number of events currently in the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
