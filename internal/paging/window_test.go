package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanRequest(t *testing.T) {
	tests := []struct {
		name      string
		current   Window
		loaded    bool
		page      int
		window    Window
		mode      mergeMode
		pages     []int
		direction Direction
	}{
		{name: "nothing loaded", current: InitialWindow(), loaded: false, page: 4, window: Window{4, 4}, mode: mergeReplace, pages: []int{4}, direction: DirectionReplace},
		{name: "far before", current: Window{5, 6}, loaded: true, page: 2, window: Window{2, 3}, mode: mergeReplace, pages: []int{2, 3}, direction: DirectionBackward},
		{name: "immediately before", current: Window{5, 6}, loaded: true, page: 4, window: Window{4, 5}, mode: mergePrepend, pages: []int{4}, direction: DirectionBackward},
		{name: "immediately after", current: Window{5, 6}, loaded: true, page: 7, window: Window{6, 7}, mode: mergeAppend, pages: []int{7}, direction: DirectionForward},
		{name: "far after", current: Window{5, 6}, loaded: true, page: 10, window: Window{9, 10}, mode: mergeReplace, pages: []int{9, 10}, direction: DirectionForward},
		{name: "repeat lower bound", current: Window{5, 6}, loaded: true, page: 5, window: Window{5, 5}, mode: mergeReplace, pages: []int{5}, direction: DirectionReplace},
		{name: "refresh first page", current: Window{1, 2}, loaded: true, page: 1, window: Window{1, 1}, mode: mergeReplace, pages: []int{1}, direction: DirectionReplace},
		{name: "zero coerced to first page", current: Window{1, 1}, loaded: true, page: 0, window: Window{1, 1}, mode: mergeReplace, pages: []int{1}, direction: DirectionReplace},
		{name: "negative before window", current: Window{3, 4}, loaded: true, page: -7, window: Window{1, 2}, mode: mergeReplace, pages: []int{1, 2}, direction: DirectionBackward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := planRequest(tt.current, tt.loaded, tt.page)
			assert.Equal(t, tt.window, p.window)
			assert.Equal(t, tt.mode, p.mode)
			assert.Equal(t, tt.pages, p.pages)
			assert.Equal(t, tt.direction, p.direction)
			assert.LessOrEqual(t, p.window.First, p.window.Last)
		})
	}
}

func TestMerge_PrependKeepsOldFirstPage(t *testing.T) {
	old := []int{30, 31, 32, 40}
	p := planRequest(Window{3, 4}, true, 2)

	got := merge(old, Window{3, 4}, p, [][]int{{20, 21, 22}}, 3)

	assert.Equal(t, []int{20, 21, 22, 30, 31, 32}, got)
}

func TestMerge_AppendKeepsOldLastPage(t *testing.T) {
	old := []int{20, 21, 22, 30, 31, 32}
	p := planRequest(Window{2, 3}, true, 4)

	got := merge(old, Window{2, 3}, p, [][]int{{40, 41}}, 3)

	assert.Equal(t, []int{30, 31, 32, 40, 41}, got)
}

func TestMerge_DoesNotAliasOldList(t *testing.T) {
	old := make([]int, 3, 10)
	copy(old, []int{1, 2, 3})
	p := planRequest(Window{1, 1}, true, 2)

	got := merge(old, Window{1, 1}, p, [][]int{{4, 5, 6}}, 3)
	got[0] = 100

	assert.Equal(t, []int{1, 2, 3}, old)
}

func TestWindow_Contains(t *testing.T) {
	w := Window{First: 2, Last: 3}

	assert.False(t, w.Contains(1))
	assert.True(t, w.Contains(2))
	assert.True(t, w.Contains(3))
	assert.False(t, w.Contains(4))
	assert.Equal(t, "(2,3)", w.String())
}
