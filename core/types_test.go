// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathboard/core"
)

func TestEdge_EqualIsOrderInsensitive(t *testing.T) {
	ab := core.NewEdge(1, 2, core.WithWeight(3))
	ba := core.NewEdge(2, 1)

	assert.True(t, ab.Equal(ba))
	assert.True(t, ba.Equal(ab))
	assert.False(t, ab.Equal(core.NewEdge(1, 3)))
}

func TestEdge_Other(t *testing.T) {
	e := core.NewEdge(4, 7)

	other, ok := e.Other(4)
	assert.True(t, ok)
	assert.Equal(t, core.NodeID(7), other)

	other, ok = e.Other(7)
	assert.True(t, ok)
	assert.Equal(t, core.NodeID(4), other)

	_, ok = e.Other(5)
	assert.False(t, ok)
	_, ok = e.Other(core.NoNode)
	assert.False(t, ok)
}

func TestEdge_ContainsAndString(t *testing.T) {
	e := core.NewEdge(1, 2)
	assert.True(t, e.Contains(1))
	assert.True(t, e.Contains(2))
	assert.False(t, e.Contains(core.NoNode))
	assert.Equal(t, "Edge ~ 1 - 2", e.String())
	assert.Equal(t, "Node 5", core.Node{ID: 5}.String())
}

func TestNewEdge_DefaultWeight(t *testing.T) {
	assert.Equal(t, core.DefaultWeight, core.NewEdge(1, 2).Weight)
	assert.Equal(t, int64(8), core.NewEdge(1, 2, core.WithWeight(8)).Weight)
}
