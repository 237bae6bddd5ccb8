package payout

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=payout

var ErrPoolClosed = errors.New("worker pool is closed")

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool bounds how many gateway transfers run at once.
type WorkerPool struct {
	pool chan Task
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{
		pool: make(chan Task),
		quit: make(chan struct{}),
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.quit:
			return
		case task := <-wp.pool:
			if err := task(); err != nil {
				zap.L().Error("payout task failed", zap.Error(err))
			}
		}
	}
}

// AddTask blocks until a worker picks the task up, ctx is done or the pool closes.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-wp.quit:
		return ErrPoolClosed
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.quit:
		return ErrPoolClosed
	case wp.pool <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for running ones to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.quit)
	})
	wp.wg.Wait()
}
