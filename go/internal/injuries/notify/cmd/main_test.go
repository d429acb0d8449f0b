package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForListenerReturnsAsSoonAsTheListenerExits(t *testing.T) {
	errCh := make(chan error, 1)
	errCh <- nil

	start := time.Now()
	waitForListener(errCh, 5*time.Second)
	assert.Less(t, time.Since(start), time.Second, "must not sleep the full timeout")
}

func TestWaitForListenerGivesUpAfterTheTimeout(t *testing.T) {
	errCh := make(chan error)

	done := make(chan struct{})
	go func() {
		waitForListener(errCh, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wait did not observe the timeout")
	}
}
