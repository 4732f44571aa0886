package graph

import "errors"

// Interrupt is a node's explicit request to park the run and wait for
// caller-supplied input. It travels as an error so node bodies can abort
// mid-work, but it is not a failure.
type Interrupt struct {
	Payload map[string]interface{}
}

func (i *Interrupt) Error() string {
	if msg, ok := i.Payload["message"].(string); ok {
		return "interrupt: " + msg
	}
	return "interrupt"
}

// NewInterrupt builds an interrupt with the conventional payload shape.
func NewInterrupt(kind, message string) *Interrupt {
	return &Interrupt{Payload: map[string]interface{}{
		"type":    kind,
		"message": message,
	}}
}

// AsInterrupt extracts an Interrupt from an error chain.
func AsInterrupt(err error) (*Interrupt, bool) {
	var i *Interrupt
	if errors.As(err, &i) {
		return i, true
	}
	return nil, false
}
