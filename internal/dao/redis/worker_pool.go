package redis

import (
	"go.uber.org/zap"
)

// cacheTask is a deferred cache maintenance action.
type cacheTask struct {
	Action func()
}

var cacheTaskChan chan *cacheTask

// SubmitCacheTask queues a cache update to run off the request path. When
// the buffer is full the task degrades to synchronous execution rather than
// being dropped.
func SubmitCacheTask(action func()) {
	select {
	case cacheTaskChan <- &cacheTask{Action: action}:
	default:
		zap.L().Warn("Redis cache task channel full, executing synchronously")
		action()
	}
}

func startWorker() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("Redis worker panic", zap.Any("recover", r))
			go startWorker() // restart
		}
	}()

	for task := range cacheTaskChan {
		if task.Action != nil {
			task.Action()
		}
	}
}

// InitCacheWorker starts the worker pool consuming cache tasks.
func InitCacheWorker(workerNum int, bufferSize int) {
	cacheTaskChan = make(chan *cacheTask, bufferSize)

	for i := 0; i < workerNum; i++ {
		go startWorker()
	}
	zap.L().Info("Redis cache workers started", zap.Int("workers", workerNum), zap.Int("buffer", bufferSize))
}
