package forms

import "sync"

// ConfirmDialog is the shared two-step confirmation used before destructive
// actions. Open stores what is being confirmed; Accept hands it back exactly
// once.
type ConfirmDialog struct {
	mu      sync.Mutex
	active  bool
	message string
	accept  func()
}

func (d *ConfirmDialog) Open(message string, onAccept func()) {
	d.mu.Lock()
	d.active = true
	d.message = message
	d.accept = onAccept
	d.mu.Unlock()
}

func (d *ConfirmDialog) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

func (d *ConfirmDialog) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

// Accept closes the dialog and runs the stored callback. A second call is a
// no-op.
func (d *ConfirmDialog) Accept() {
	d.mu.Lock()
	fn := d.accept
	active := d.active
	d.active = false
	d.accept = nil
	d.message = ""
	d.mu.Unlock()
	if active && fn != nil {
		fn()
	}
}

// Cancel dismisses the dialog without running the callback.
func (d *ConfirmDialog) Cancel() {
	d.mu.Lock()
	d.active = false
	d.accept = nil
	d.message = ""
	d.mu.Unlock()
}
