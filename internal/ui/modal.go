// Package ui holds the browser-facing state containers of the contact
// capture flow: the modal coordinator every page trigger shares, and the
// contact form's submission state machine.
package ui

import "sync"

// ModalView selects which content the contact overlay shows.
type ModalView string

const (
	ViewForm  ModalView = "form"
	ViewLinks ModalView = "links"
)

// ModalCoordinator is the single source of truth for overlay visibility.
// One instance is created per browsing session and injected into every
// component that can trigger contact capture; it is never ambient state.
type ModalCoordinator struct {
	mu     sync.Mutex
	isOpen bool
	view   ModalView
}

func NewModalCoordinator() *ModalCoordinator {
	return &ModalCoordinator{view: ViewForm}
}

// Open shows the overlay with the given view, defaulting to the form.
// View and visibility change under one lock so no consumer can observe
// the overlay open with a stale view.
func (m *ModalCoordinator) Open(view ...ModalView) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(view) > 0 {
		m.view = view[0]
	}
	m.isOpen = true
}

// Close hides the overlay. The view is deliberately retained: reopening
// without an argument returns the user to the screen they dismissed.
// Closing an already-closed overlay is a no-op.
func (m *ModalCoordinator) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isOpen = false
}

// IsOpen reports overlay visibility. Consumers use it to suppress
// background page scrolling while the overlay is up.
func (m *ModalCoordinator) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isOpen
}

// View returns the content currently selected for the overlay. Only
// meaningful to render when IsOpen reports true.
func (m *ModalCoordinator) View() ModalView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// ResetForNavigation closes the overlay and restores the form view.
// Called on client-side route changes so a legal page never inherits an
// open overlay from the landing page.
func (m *ModalCoordinator) ResetForNavigation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isOpen = false
	m.view = ViewForm
}
