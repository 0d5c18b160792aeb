package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	queueSize     = 1000
	flushInterval = 2 * time.Second
)

// AsyncFileWriter queues log lines and writes them from a single goroutine. Lines are dropped
// when the queue is full so logging never blocks a request.
type AsyncFileWriter struct {
	writer    *bufio.Writer
	file      *os.File
	logChan   chan []byte
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewAsyncFileWriter(logFile string, bufferSize int) (*AsyncFileWriter, error) {
	safeLogFile := filepath.Clean(logFile)
	file, err := os.OpenFile(safeLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	aw := &AsyncFileWriter{
		writer:  bufio.NewWriterSize(file, bufferSize),
		file:    file,
		logChan: make(chan []byte, queueSize),
		done:    make(chan struct{}),
	}

	aw.wg.Add(1)
	go aw.processLogs()

	return aw, nil
}

func (aw *AsyncFileWriter) Write(p []byte) (n int, err error) {
	select {
	case aw.logChan <- append([]byte{}, p...):
	default:
	}
	return len(p), nil
}

func (aw *AsyncFileWriter) processLogs() {
	defer aw.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case logData := <-aw.logChan:
			aw.write(logData)

		case <-ticker.C:
			_ = aw.writer.Flush()

		case <-aw.done:
			for {
				select {
				case logData := <-aw.logChan:
					aw.write(logData)
				default:
					_ = aw.writer.Flush()
					return
				}
			}
		}
	}
}

func (aw *AsyncFileWriter) write(p []byte) {
	if _, err := aw.writer.Write(p); err != nil {
		fmt.Fprintln(os.Stderr, "error writing log data to file", err)
	}
}

// Close drains the queue, flushes the buffer and closes the file.
func (aw *AsyncFileWriter) Close() {
	aw.closeOnce.Do(func() {
		close(aw.done)
		aw.wg.Wait()
		_ = aw.file.Close()
	})
}
