package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedJitter returns a jitter func that always yields 0.5, which maps
// to a zero random offset (no jitter applied).
func fixedJitter() float64 { return 0.5 }

func TestExponentialBackoff_Defaults(t *testing.T) {
	b := NewExponentialBackoff(3)
	assert.Equal(t, 3, b.MaxAttempts())
}

func TestExponentialBackoff_NextDelayGrows(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(10*time.Second),
		WithMultiplier(2.0),
		WithJitterFunc(fixedJitter),
	)

	assert.Equal(t, 100*time.Millisecond, b.NextDelay(0))
	assert.Equal(t, 200*time.Millisecond, b.NextDelay(1))
	assert.Equal(t, 400*time.Millisecond, b.NextDelay(2))
}

func TestExponentialBackoff_CapsAtMaxDelay(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(1*time.Second),
		WithMaxDelay(2*time.Second),
		WithJitterFunc(fixedJitter),
	)

	assert.Equal(t, 2*time.Second, b.NextDelay(5))
}

func TestExponentialBackoff_JitterBounds(t *testing.T) {
	b := NewExponentialBackoff(3,
		WithInitialDelay(100*time.Millisecond),
		WithJitter(0.1),
	)

	for i := 0; i < 50; i++ {
		d := b.NextDelay(0)
		assert.GreaterOrEqual(t, d, 90*time.Millisecond)
		assert.LessOrEqual(t, d, 110*time.Millisecond)
	}
}

func TestExponentialBackoff_NoJitter(t *testing.T) {
	b := NewExponentialBackoff(3,
		WithInitialDelay(50*time.Millisecond),
		WithJitter(0),
	)
	assert.Equal(t, 50*time.Millisecond, b.NextDelay(0))
}
