// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var calls atomic.Int32
	w := WorkerFunc(func(context.Context) error {
		calls.Add(1)
		return nil
	})

	err := NewWorkers(w, w, w).Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	errBoom := errors.New("boom")
	failing := WorkerFunc(func(context.Context) error {
		return errBoom
	})
	blocking := WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	done := make(chan error, 1)
	go func() {
		done <- NewWorkers(blocking, failing).Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errBoom)
	case <-time.After(5 * time.Second):
		t.Fatal("blocking worker was not cancelled")
	}
}

func TestWorkers_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	blocking := WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	done := make(chan error, 1)
	go func() {
		done <- NewWorkers(blocking, blocking).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop after cancel")
	}
}
