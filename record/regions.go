package record

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/replay"
)

// RegionKind classifies how a command was handled by a probing replay.
type RegionKind uint8

const (
	// RegionAll marks a command not yet classified; it is drawn in
	// every replay-region pass.
	RegionAll RegionKind = iota
	// RegionNative marks a command the probed target drew natively.
	RegionNative
	// RegionImageFallback marks a command the probed target would
	// rasterize.
	RegionImageFallback
)

var regionKindNames = [...]string{
	RegionAll:           "All",
	RegionNative:        "Native",
	RegionImageFallback: "ImageFallback",
}

// String returns the string representation of a RegionKind.
func (k RegionKind) String() string {
	if int(k) < len(regionKindNames) {
		return regionKindNames[k]
	}
	return "Unknown"
}

// RegionElement is the per-command result of a create-regions replay.
type RegionElement struct {
	Region   RegionKind
	SourceID uint32
	MaskID   uint32
}

// regionArray holds one classification of the whole command log,
// shared between backends by reference counting.
type regionArray struct {
	id       uint32
	refs     atomic.Int32
	elements []RegionElement
}

// regionTable maps region-array ids to arrays. It is the only part of a
// surface that backends touch concurrently, so it carries its own lock.
type regionTable struct {
	mu     sync.Mutex
	arrays map[uint32]*regionArray
}

func (t *regionTable) attach(id uint32) *regionArray {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.arrays == nil {
		t.arrays = make(map[uint32]*regionArray)
	}
	ra := &regionArray{id: id}
	ra.refs.Store(1)
	t.arrays[id] = ra
	return ra
}

func (t *regionTable) find(id uint32) *regionArray {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.arrays[id]
}

func (t *regionTable) reference(id uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	ra := t.arrays[id]
	if ra == nil {
		return false
	}
	ra.refs.Add(1)
	return true
}

func (t *regionTable) remove(id uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ra := t.arrays[id]
	if ra == nil {
		return
	}
	if ra.refs.Add(-1) <= 0 {
		delete(t.arrays, id)
	}
}

func (t *regionTable) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.arrays = nil
}

// IDAllocator produces region-array ids. Implementations must never
// return 0, which is reserved for "no region array".
type IDAllocator interface {
	NextID() uint32
}

// atomicIDs is the default process-wide allocator: a monotonically
// increasing counter that skips 0 on wraparound.
type atomicIDs struct {
	last atomic.Uint32
}

func (a *atomicIDs) NextID() uint32 {
	for {
		id := a.last.Add(1)
		if id != 0 {
			return id
		}
	}
}

var defaultIDs IDAllocator = &atomicIDs{}

// AttachRegions allocates a region array for this surface and returns its
// id, for use with ReplayAndCreateRegions and ReplayRegion. The array
// starts with one reference.
func (s *Surface) AttachRegions() (uint32, error) {
	if s.finished {
		return 0, replay.ErrSurfaceFinished
	}
	id := s.ids.NextID()
	s.regions.attach(id)
	return id, nil
}

// ReferenceRegions adds a reference to the region array with the given
// id. It reports whether the id was found.
func (s *Surface) ReferenceRegions(id uint32) bool {
	return s.regions.reference(id)
}

// RemoveRegions drops a reference to the region array with the given id,
// deleting the array when the last reference goes.
func (s *Surface) RemoveRegions(id uint32) {
	s.regions.remove(id)
}

// Regions returns a copy of the classification recorded under id, or nil
// if the id is unknown or no create-regions replay ran yet.
func (s *Surface) Regions(id uint32) []RegionElement {
	ra := s.regions.find(id)
	if ra == nil || ra.elements == nil {
		return nil
	}
	return append([]RegionElement(nil), ra.elements...)
}
