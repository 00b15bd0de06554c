package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUTCClock_Now(t *testing.T) {
	assert.Equal(t, time.UTC, UTCClock{}.Now().Location())
}

func TestFrozenClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, loc)

	c := NewFrozenClock(start)
	assert.True(t, c.Now().Equal(start))
	assert.Equal(t, time.UTC, c.Now().Location())

	c.Advance(time.Minute)
	assert.True(t, c.Now().Equal(start.Add(time.Minute)))
	assert.Equal(t, time.UTC, c.Now().Location())
}
