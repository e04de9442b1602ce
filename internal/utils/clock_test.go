package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_ReportsInLocation(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	c := NewClock(wib)

	assert.Equal(t, wib, c.Now().Location())
	assert.Equal(t, wib, c.Location())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}

func TestClock_NilLocationIsLocal(t *testing.T) {
	assert.Equal(t, time.Local, NewClock(nil).Location())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	c := NewFixedClock(at)

	assert.True(t, at.Equal(c.Now()))
	assert.True(t, at.Equal(c.Now()))
}
