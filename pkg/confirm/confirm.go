// Package confirm provides the single-slot yes/no gate used before
// destructive operations.
package confirm

// Request is a pending question and the continuation waiting for its answer.
type Request struct {
	Message  string
	onResult func(bool)
}

// Prompt holds at most one pending Request. Showing a new request replaces
// the previous one, whose continuation is then never called.
type Prompt struct {
	pending *Request
	// OnChange, when set, is called after the slot is filled or cleared so a
	// host can show or hide its modal.
	OnChange func(message string, visible bool)
}

// New returns an empty prompt.
func New() *Prompt {
	return &Prompt{}
}

// Show records the request, replacing any request still pending.
func (p *Prompt) Show(message string, onResult func(bool)) {
	p.pending = &Request{Message: message, onResult: onResult}
	p.changed()
}

// Pending returns the message of the waiting request, if any.
func (p *Prompt) Pending() (string, bool) {
	if p.pending == nil {
		return "", false
	}
	return p.pending.Message, true
}

// Confirm resolves the pending request with true.
func (p *Prompt) Confirm() {
	p.resolve(true)
}

// Cancel resolves the pending request with false.
func (p *Prompt) Cancel() {
	p.resolve(false)
}

// Hide clears the slot without calling the continuation.
func (p *Prompt) Hide() {
	if p.pending == nil {
		return
	}
	p.pending = nil
	p.changed()
}

// resolve empties the slot before running the continuation, so the
// continuation runs at most once and may itself call Show.
func (p *Prompt) resolve(answer bool) {
	req := p.pending
	if req == nil {
		return
	}
	p.pending = nil
	p.changed()
	if req.onResult != nil {
		req.onResult(answer)
	}
}

func (p *Prompt) changed() {
	if p.OnChange == nil {
		return
	}
	if p.pending == nil {
		p.OnChange("", false)
		return
	}
	p.OnChange(p.pending.Message, true)
}
