package infer

import "fmt"

// Diag carries non-fatal warnings produced during inference.
type Diag struct{ ws []string }

func (d *Diag) HasWarnings() bool { return d != nil && len(d.ws) > 0 }

func (d *Diag) Warnings() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.ws...)
}

func (d *Diag) warnf(f string, a ...any) {
	if d != nil {
		d.ws = append(d.ws, fmt.Sprintf(f, a...))
	}
}
