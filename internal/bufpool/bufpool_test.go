// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package bufpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsCorrectSize(t *testing.T) {
	p := New(25)
	buf := p.Get()
	assert.Len(t, buf, 25)
}

func TestPutRejectsWrongSize(t *testing.T) {
	p := New(25)
	// should not panic; just silently declines to pool a mismatched buffer
	p.Put(make([]uint32, 10))
}

// sync.Pool does not guarantee that Get returns the buffer just Put, so
// only the size of the returned buffer is checked.
func TestGetAfterPutReturnsCorrectSize(t *testing.T) {
	p := New(4)
	buf := p.Get()
	buf[0] = 7
	p.Put(buf)

	buf2 := p.Get()
	assert.Len(t, buf2, 4)
}
