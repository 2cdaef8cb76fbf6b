package intent

import "fmt"

// URLBuilder renders the external checkout URL. Pure string formatting over
// configuration; the provider itself is never called from the engine.
type URLBuilder struct {
	template string
}

// NewURLBuilder takes a template with three verbs applied in order:
// showtime key, intent id, ticket count.
func NewURLBuilder(template string) URLBuilder {
	return URLBuilder{template: template}
}

func (b URLBuilder) CheckoutURL(showtimeKey, intentID string, tickets int) string {
	return fmt.Sprintf(b.template, showtimeKey, intentID, tickets)
}
