package httpx

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakerState(t *testing.T, cb CircuitBreaker) gobreaker.State {
	wrapper, ok := cb.(*circuitBreakerWrapper)
	require.True(t, ok)
	return wrapper.breaker.State()
}

func TestNewCircuitBreaker(t *testing.T) {
	cb := NewCircuitBreaker("detoxify", 30*time.Second, 3, nil)

	require.NotNil(t, cb)
	assert.IsType(t, &circuitBreakerWrapper{}, cb)
	assert.Equal(t, gobreaker.StateClosed, breakerState(t, cb))
}

func TestCircuitBreaker_Execute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cb := NewCircuitBreaker("success", 30*time.Second, 3, nil)

		err := cb.Execute(func() error { return nil })

		assert.NoError(t, err)
	})

	t.Run("Failure is wrapped with breaker name", func(t *testing.T) {
		cb := NewCircuitBreaker("detoxify", 30*time.Second, 3, nil)
		callErr := errors.New("status 502")

		err := cb.Execute(func() error { return callErr })

		assert.Error(t, err)
		assert.ErrorIs(t, err, callErr)
		assert.Contains(t, err.Error(), "breaker (detoxify)")
	})

	t.Run("Panic is returned as error", func(t *testing.T) {
		cb := NewCircuitBreaker("panic", 30*time.Second, 3, nil)

		err := cb.Execute(func() error { panic("model crashed") })

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "panic recovered: model crashed")
	})
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker("trip", 30*time.Second, 2, logrus.New())

	for i := 0; i < 2; i++ {
		err := cb.Execute(func() error { return errors.New("classifier down") })
		assert.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, breakerState(t, cb))

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.True(t, IsOpen(err))
}

func TestCircuitBreaker_CanceledCallsDoNotTrip(t *testing.T) {
	cb := NewCircuitBreaker("canceled", 30*time.Second, 1, nil)

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return context.Canceled })
		assert.ErrorIs(t, err, context.Canceled)
	}

	assert.Equal(t, gobreaker.StateClosed, breakerState(t, cb))
}

func TestCircuitBreaker_SuccessResetsConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker("reset", 30*time.Second, 2, nil)

	_ = cb.Execute(func() error { return errors.New("fail") }) //nolint:errcheck
	_ = cb.Execute(func() error { return nil })                //nolint:errcheck
	_ = cb.Execute(func() error { return errors.New("fail") }) //nolint:errcheck

	assert.Equal(t, gobreaker.StateClosed, breakerState(t, cb))
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := NewCircuitBreaker("recovery", 50*time.Millisecond, 1, nil)

	err := cb.Execute(func() error { return errors.New("trigger") })
	assert.Error(t, err)
	assert.Equal(t, gobreaker.StateOpen, breakerState(t, cb))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, breakerState(t, cb))

	err = cb.Execute(func() error { return nil })
	assert.NoError(t, err)
	assert.NotEqual(t, gobreaker.StateOpen, breakerState(t, cb))
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	cb := NewCircuitBreaker("concurrent", 30*time.Second, 100, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			err := cb.Execute(func() error {
				if id%2 == 0 {
					return nil
				}
				return errors.New("failure")
			})
			if err != nil {
				assert.Contains(t, err.Error(), "concurrent")
			}
		}(i)
	}
	wg.Wait()
}

func TestIsOpen(t *testing.T) {
	assert.False(t, IsOpen(nil))
	assert.False(t, IsOpen(errors.New("other")))
	assert.True(t, IsOpen(gobreaker.ErrOpenState))
	assert.True(t, IsOpen(gobreaker.ErrTooManyRequests))
}
