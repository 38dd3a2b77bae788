package must

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBef(t *testing.T) {
	assert.Panics(t, func() {
		Bef(false, "must be true")
	})

	assert.NotPanics(t, func() {
		Bef(true, "must be true")
	})
}

func TestBeEqualf(t *testing.T) {
	assert.Panics(t, func() {
		BeEqualf(1, 2, "1 != 2")
	})

	assert.NotPanics(t, func() {
		BeEqualf(1, 1, "1 == 1")
	})
}

func TestNotBeEmptyf(t *testing.T) {
	assert.Panics(t, func() {
		NotBeEmptyf([]int{}, "empty")
	})

	assert.NotPanics(t, func() {
		NotBeEmptyf([]int{1}, "not empty")
	})
}

func TestFailf(t *testing.T) {
	assert.Panics(t, func() {
		Failf("always fails: %d", 1)
	})
}
