package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher 监听调参文件变化并在后台重新加载
//
// fsnotify 事件在独立 goroutine 中处理；解析成功的新配置写入 Updates 通道，
// 游戏循环在 Update 中非阻塞地读取，保证模拟本身仍然是单线程的。
type TuningWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan *Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// 编辑器保存文件时常常连续触发多次写事件，此间隔内的重复事件被忽略
const tuningReloadDebounce = 100 * time.Millisecond

// NewTuningWatcher 开始监听 path 所在目录
// 监听目录而不是文件本身，这样"写临时文件再重命名"的保存方式也能被捕获
func NewTuningWatcher(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		path:    filepath.Clean(path),
		watcher: w,
		Updates: make(chan *Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	log.Printf("[TuningWatcher] Watching %s", tw.path)
	return tw, nil
}

// Close 停止监听
func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

// Poll 非阻塞地取出最新的配置，没有新配置时返回 nil
func (tw *TuningWatcher) Poll() *Tuning {
	select {
	case t := <-tw.Updates:
		return t
	default:
		return nil
	}
}

func (tw *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < tuningReloadDebounce {
				continue
			}
			last = now
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.sendError(err)
		case <-tw.closeCh:
			return
		}
	}
}

func (tw *TuningWatcher) reload() {
	tuning, err := LoadTuning(tw.path)
	if err != nil {
		log.Printf("[TuningWatcher] Warning: reload failed: %v", err)
		tw.sendError(err)
		return
	}

	// 只保留最新的一份配置
	select {
	case <-tw.Updates:
	default:
	}
	tw.Updates <- tuning
	log.Printf("[TuningWatcher] Reloaded %s", tw.path)
}

func (tw *TuningWatcher) sendError(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}
