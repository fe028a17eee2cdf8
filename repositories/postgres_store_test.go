package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNowMatchesTimestamptzPrecision(t *testing.T) {
	for range 5 {
		ts := now()
		assert.Zero(t, ts.Nanosecond()%1000)
		assert.Equal(t, "UTC", ts.Location().String())
	}
}
