// Package watch observes a source file on disk and feeds detected edits
// into the core package's incremental re-lexer, the concrete shape of the
// "IDE/LSP-style consumer" the scanner's recovery policy is designed
// around.
package watch

import (
	"os"

	tokenizer "github.com/fumiya-kume/felang-tokenizer"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/juju/errors"
)

var watchLogger = tokenizer.NewComponentLogger("watch")

// Update is delivered to a Watcher's channel each time the watched file
// changes: the re-lexed tokens, the edit that was derived, and the new
// source text they were computed against. CorrelationID ties a single
// Update back to the log lines a Watcher emits for it, since a process may
// run several Watchers concurrently against different files.
type Update struct {
	Tokens        []tokenizer.Token
	Edit          tokenizer.Edit
	Source        string
	CorrelationID string
}

// Watcher observes a single file path and re-lexes it incrementally on
// every write.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan Update
	errs    chan error
	done    chan struct{}

	lastSource string
	lastTokens []tokenizer.Token
}

// New starts watching path. The initial full scan happens synchronously so
// the first Updates() delivery always has a baseline to diff against.
func New(path string) (*Watcher, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "watch: initial read")
	}
	tokens, err := tokenizer.ScanStrict(string(content))
	if err != nil {
		tokens = tokenizer.ScanRecovering(string(content)).Tokens
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Annotate(err, "watch: fsnotify init")
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, errors.Annotate(err, "watch: add path")
	}

	w := &Watcher{
		path:       path,
		fsw:        fsw,
		updates:    make(chan Update, 1),
		errs:       make(chan error, 1),
		done:       make(chan struct{}),
		lastSource: string(content),
		lastTokens: tokens,
	}
	go w.run()
	return w, nil
}

// Updates returns the channel of incremental re-lex results.
func (w *Watcher) Updates() <-chan Update { return w.updates }

// Errors returns the channel of watch/read errors.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops watching and releases the underlying OS resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.handleChange()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			watchLogger.Debugf("watch: fsnotify error: %v", err)
			w.errs <- err
		}
	}
}

func (w *Watcher) handleChange() {
	content, err := os.ReadFile(w.path)
	if err != nil {
		w.errs <- errors.Annotate(err, "watch: re-read")
		return
	}
	newSource := string(content)
	edit := DiffEdit(w.lastSource, newSource)
	correlationID := uuid.NewString()

	result := tokenizer.RelexIncremental(w.lastTokens, w.lastSource, edit)
	w.lastSource = newSource
	w.lastTokens = result.Tokens

	watchLogger.Debugf("watch[%s]: re-lexed %s after edit at offset %d", correlationID, w.path, edit.Range.Start.Offset)
	w.updates <- Update{Tokens: result.Tokens, Edit: edit, Source: newSource, CorrelationID: correlationID}
}

// DiffEdit derives the single Edit that transforms oldSource into
// newSource, using a longest-common-prefix/suffix heuristic (not a full
// LCS diff): it finds the longest shared prefix and, independently, the
// longest shared suffix of what remains, and reports everything between
// them as replaced. This is not minimal for all edits (e.g. it can
// misreport a rearrangement as a larger replacement than necessary) but it
// is O(n) and always produces a valid edit.
func DiffEdit(oldSource, newSource string) tokenizer.Edit {
	oldRunes := []rune(oldSource)
	newRunes := []rune(newSource)

	prefix := 0
	for prefix < len(oldRunes) && prefix < len(newRunes) && oldRunes[prefix] == newRunes[prefix] {
		prefix++
	}

	oldSuffix := 0
	newSuffix := 0
	for oldSuffix < len(oldRunes)-prefix && newSuffix < len(newRunes)-prefix &&
		oldRunes[len(oldRunes)-1-oldSuffix] == newRunes[len(newRunes)-1-newSuffix] {
		oldSuffix++
		newSuffix++
	}

	oldEnd := len(oldRunes) - oldSuffix
	newEnd := len(newRunes) - newSuffix

	return tokenizer.Edit{
		Range: tokenizer.SourceRange{
			Start: tokenizer.SourcePosition{Offset: prefix},
			End:   tokenizer.SourcePosition{Offset: oldEnd},
		},
		Replacement: string(newRunes[prefix:newEnd]),
	}
}
