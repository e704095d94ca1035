// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

// Package bufpool hands out reusable uint32 scratch index grids, sized for
// a given Tileset grid size, so batch mesh extraction across many
// tolerances or tiles doesn't pay a fresh O(G^2) allocation per extraction
// when ExtractMeshInto is used for concurrency.
package bufpool

import "sync"

// Pool hands out []uint32 scratch buffers of a fixed size.
type Pool struct {
	size int
	pool sync.Pool
}

// New returns a Pool that hands out buffers of the given length.
func New(size int) *Pool {
	p := &Pool{size: size}
	p.pool.New = func() interface{} {
		return make([]uint32, p.size)
	}
	return p
}

// Get returns a scratch buffer of Pool's configured size. The buffer's
// contents are unspecified: a reused buffer is not cleared. Buffers passed
// to rtin.ExtractMeshInto need no clearing, since it zeroes its scratch
// grid before use.
func (p *Pool) Get() []uint32 {
	return p.pool.Get().([]uint32)
}

// Put returns buf to the pool for reuse. buf must have been obtained from
// Get on this same Pool.
func (p *Pool) Put(buf []uint32) {
	if len(buf) != p.size {
		return
	}
	p.pool.Put(buf)
}
