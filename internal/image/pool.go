package image

import (
	"image"
	"sync"
)

// Pool is a thread-safe pool for reusing *image.RGBA scratch buffers.
//
// Buffers are grouped by size, so repeated work at the same dimensions
// (one gradient per animation frame) allocates only once per worker.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[image.Point][]*image.RGBA
	maxSize int // max buffers per bucket
}

// NewPool creates a new pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[image.Point][]*image.RGBA),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed w×h buffer with origin (0,0), reusing a pooled one
// when available.
func (p *Pool) Get(w, h int) *image.RGBA {
	key := image.Pt(w, h)

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		clear(buf.Pix)
		return buf
	}
	p.mu.Unlock()

	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Put returns a buffer to the pool. Buffers with a non-zero origin, nil
// buffers and buffers beyond the bucket capacity are discarded.
func (p *Pool) Put(buf *image.RGBA) {
	if buf == nil || buf.Rect.Min != (image.Point{}) {
		return
	}
	key := buf.Rect.Size()

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// defaultPool is the package-level pool used by the transforms.
var defaultPool = NewPool(16)

// GetFromDefault retrieves a buffer from the default pool.
func GetFromDefault(w, h int) *image.RGBA {
	return defaultPool.Get(w, h)
}

// PutToDefault returns a buffer to the default pool.
func PutToDefault(buf *image.RGBA) {
	defaultPool.Put(buf)
}
