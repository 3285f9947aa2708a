// Package clipboard runs the event pipeline between the copy trigger
// and the OS clipboard.
package clipboard

import (
	"log"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/zotclip/zotclip/internal/citation"
	"github.com/zotclip/zotclip/internal/config"
)

// Pipeline reacts to copy triggers: it waits for the clipboard to
// settle, reads it, and rewrites the content when it is a citation.
//
// Triggers arrive on a buffered channel and are drained by a single
// worker goroutine, so exactly one run owns the clipboard at a time.
// A trigger that fires while a run is in flight parks in the one-slot
// buffer; anything beyond that is coalesced away.
type Pipeline struct {
	cfg           *config.Config
	onReformatted func(original, formatted string)

	// Clipboard access, swappable in tests.
	read  func() (string, error)
	write func(string) error

	triggers chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu            sync.Mutex
	lastWritten   string
	lastOriginal  string
	lastFormatted string
}

// New creates a pipeline reading the output mode from cfg.
// onReformatted is invoked after every successful clipboard rewrite
// and may be nil.
func New(cfg *config.Config, onReformatted func(original, formatted string)) *Pipeline {
	return &Pipeline{
		cfg:           cfg,
		onReformatted: onReformatted,
		read:          clipboard.ReadAll,
		write:         clipboard.WriteAll,
		triggers:      make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (p *Pipeline) Start() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("RECOVERED FROM PANIC IN CLIPBOARD WORKER: %v", r)
			}
		}()
		for {
			select {
			case <-p.done:
				return
			case <-p.triggers:
				p.runOnce()
			}
		}
	}()
}

// Stop shuts the worker down. Safe to call more than once.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

// Trigger signals that a copy was detected. It never blocks the
// caller (the hotkey listener goroutine): if a run is already queued
// the extra trigger is dropped.
func (p *Pipeline) Trigger() {
	select {
	case p.triggers <- struct{}{}:
	default:
	}
}

// LastChange returns the original and formatted text of the most
// recent rewrite, if there has been one.
func (p *Pipeline) LastChange() (original, formatted string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastOriginal == "" && p.lastFormatted == "" {
		return "", "", false
	}
	return p.lastOriginal, p.lastFormatted, true
}

// runOnce performs one Triggered -> Reading -> Processing -> Writing
// pass. Every failure path logs and returns to idle; a single attempt
// per trigger, the user can simply copy again.
func (p *Pipeline) runOnce() {
	// The OS clipboard may not hold the new content at the instant
	// the key combination is seen. Wait for it to settle.
	time.Sleep(p.cfg.SettleDelay())

	text, err := p.read()
	if err != nil {
		log.Printf("Failed to read clipboard: %v", err)
		return
	}
	if text == "" {
		return
	}

	p.mu.Lock()
	selfWritten := p.lastWritten != "" && text == p.lastWritten
	p.mu.Unlock()
	if selfWritten {
		// Our own write observed as a copy event. Ignoring it here is
		// what keeps the pipeline from reformatting its own output.
		return
	}

	rec, ok := citation.Match(text)
	if !ok {
		// Most clipboard content is not a citation. Stay silent.
		return
	}

	formatted := citation.Format(rec, p.cfg.Mode())
	if formatted == text {
		return
	}

	if err := p.write(formatted); err != nil {
		log.Printf("Failed to write clipboard: %v", err)
		return
	}

	p.mu.Lock()
	p.lastWritten = formatted
	p.lastOriginal = text
	p.lastFormatted = formatted
	p.mu.Unlock()

	log.Printf("Reformatted citation %q -> %q", rec.Title, formatted)
	if p.onReformatted != nil {
		p.onReformatted(text, formatted)
	}
}
