package logger

import (
	"os"
	"sync/atomic"
)

// ReopenableWriteSyncer is a zapcore.WriteSyncer whose underlying file can be
// reopened at runtime, so external log rotation (rename + SIGHUP) works
// without restarting the process.
type ReopenableWriteSyncer struct {
	path string
	cur  atomic.Pointer[os.File]
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Reload opens the configured path again and swaps it in, closing the
// previous file. Writes racing a reload land in one of the two files.
func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	old := ws.cur.Swap(file)
	if old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (n int, err error) {
	return ws.cur.Load().Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.cur.Load().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.cur.Load().Close()
}
