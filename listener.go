package tour

import (
	"context"
	"sync"
	"time"

	"github.com/grindlemire/go-tour/internal/debug"
)

// --- Listener Lifecycle Helpers ---
//
// Everything here hands ownership of listener lifetime back to the caller
// as a remove/stop closure. All closures returned from this file are safe
// to invoke more than once.

// DefaultDebounceInterval is used by Debounce when no interval is given.
const DefaultDebounceInterval = 300 * time.Millisecond

// DefaultWatcherInterval is used by SetTargetWatcher when no interval is
// given.
const DefaultWatcherInterval = 500 * time.Millisecond

// EventResize is the host event SetTourUpdateListener attaches to by
// default.
const EventResize = "resize"

// Debounce returns a wrapper around fn that delays each invocation by
// interval, resetting the delay on every call. Only the last call within a
// debounce window fires, with that call's argument.
func Debounce[T any](fn func(T), interval time.Duration) func(T) {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}

	var mu sync.Mutex
	var pending *time.Timer
	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(interval, func() {
			fn(arg)
		})
	}
}

// SetTargetWatcher invokes update on a fixed repeating interval until the
// returned stop function is called. Hosts use this to poll for target drift
// that produces no event of its own.
func SetTargetWatcher(update func(), interval time.Duration) (stop func()) {
	if update == nil {
		return func() {}
	}
	if interval <= 0 {
		interval = DefaultWatcherInterval
	}

	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				update()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// UpdateListenerOptions configures SetTourUpdateListener.
type UpdateListenerOptions struct {
	// Update is the handler to attach.
	Update func()

	// Source is the host-level event source used when no custom hooks are
	// given.
	Source EventSource

	// Event names the host event to attach to. Defaults to EventResize.
	Event string

	// CustomAttach and CustomRemove, when both set, take over listener
	// registration entirely, for update sources that are not host events.
	CustomAttach func(update func())
	CustomRemove func(update func())
}

// SetTourUpdateListener attaches the update handler to its trigger: the
// custom hooks when both are supplied, the named host event otherwise.
// Always returns a matching detach closure.
func SetTourUpdateListener(o UpdateListenerOptions) (remove func()) {
	noop := func() {}
	if o.Update == nil {
		return noop
	}

	if o.CustomAttach != nil && o.CustomRemove != nil {
		o.CustomAttach(o.Update)
		return func() { o.CustomRemove(o.Update) }
	}

	if o.Source == nil {
		return noop
	}
	event := o.Event
	if event == "" {
		event = EventResize
	}
	return o.Source.AddListener(event, o.Update)
}

// Validator decides whether a pending action should run. Validators may
// block (network calls, prompts); the context carries cancellation.
type Validator func(ctx context.Context) (bool, error)

// TakeActionIfValid runs action if the validator approves, or
// unconditionally when no validator is given. A validator error is returned
// as-is and the action does not run; validator correctness is the
// caller's responsibility.
func TakeActionIfValid(ctx context.Context, action func(), valid Validator) error {
	if action == nil {
		return nil
	}
	if valid != nil {
		ok, err := valid(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	action()
	return nil
}

// SetNextOnTargetClick arms a single-shot click handler on target: the
// first click that passes validation invokes next(true) and detaches the
// handler. A click that fails validation leaves the handler armed, so the
// target stays clickable. Returns an eager detach closure for cancelling
// before any click lands.
func SetNextOnTargetClick(target Element, next func(fromTarget bool), valid Validator) (remove func()) {
	noop := func() {}
	if target == nil || next == nil {
		return noop
	}
	events, ok := target.(EventTarget)
	if !ok {
		return noop
	}

	var mu sync.Mutex
	fired := false
	var detach func()

	handler := func() {
		err := TakeActionIfValid(context.Background(), func() {
			mu.Lock()
			if fired {
				mu.Unlock()
				return
			}
			fired = true
			d := detach
			mu.Unlock()

			next(true)
			if d != nil {
				d()
			}
		}, valid)
		if err != nil {
			// No caller to propagate to from inside a click handler; the
			// handler stays armed so the click can be retried.
			debug.Log("SetNextOnTargetClick: validator failed: %v", err)
		}
	}

	detach = events.AddClickHandler(handler)

	return func() {
		mu.Lock()
		fired = true
		d := detach
		mu.Unlock()
		if d != nil {
			d()
		}
	}
}
