package cli

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"saveworks/save"
)

type (
	// Watcher decodes a save to JSON every time it changes on disk. Bursts of
	// writes are collapsed into one decode.
	Watcher struct {
		game     save.Game
		file     string
		to       string
		opts     save.Options
		debounce time.Duration
		watcher  *fsnotify.Watcher
		mu       sync.Mutex
		// Decoded receives the outcome of every decode; nil means success.
		Decoded chan error
	}
)

func NewWatcher(game save.Game, file string, to string, opts save.Options, debounce time.Duration) *Watcher {
	return &Watcher{
		game:     game,
		file:     filepath.Clean(file),
		to:       to,
		opts:     opts,
		debounce: debounce,
		Decoded:  make(chan error, 1),
	}
}

func (w *Watcher) decode() error {
	bs, err := readSource(w.file)
	if err != nil {
		return err
	}
	jsonBytes, err := save.DecodeSave(w.game, bs, w.opts)
	if err != nil {
		return describeError(w.game, err)
	}
	return writeOutput(w.to, jsonBytes)
}

func (w *Watcher) report() {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.decode()
	if err != nil {
		log.Printf("%s changed but could not be decoded: %v", w.file, err)
	} else {
		log.Printf("%s changed, decoded to %s", w.file, w.to)
	}
	// drop the oldest outcome rather than block the debounce timer
	select {
	case w.Decoded <- err:
	default:
		select {
		case <-w.Decoded:
		default:
		}
		w.Decoded <- err
	}
}

// Start decodes the file once and then keeps decoding it on every write until
// Stop is called. The parent directory is watched since games often replace the
// save instead of writing it in place.
func (w *Watcher) Start() error {
	if err := w.decode(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "Watcher.Start error")
	}
	w.watcher = watcher

	debounced, cancel := lo.NewDebounce(w.debounce, w.report)
	go func() {
		defer cancel()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.file {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					debounced()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println(errors.Wrap(err, "watch error"))
			}
		}
	}()

	if err := watcher.Add(filepath.Dir(w.file)); err != nil {
		watcher.Close()
		return errors.Wrap(err, "Watcher.Start error")
	}
	return nil
}

func (w *Watcher) Stop() {
	if w.watcher != nil {
		w.watcher.Close()
	}
}

func StartWatching(cmd WatchCmd, opts save.Options, debounce time.Duration) error {
	game, err := save.ParseGame(cmd.Game)
	if err != nil {
		return err
	}
	if !CheckExistence(cmd.File) {
		return errors.Errorf("Source file %s does not exist!", cmd.File)
	}

	watcher := NewWatcher(game, cmd.File, cmd.To, opts, debounce)
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()
	println("Watching " + cmd.File + ", press Ctrl+C to stop. Decoded JSON goes to: " + cmd.To)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}
