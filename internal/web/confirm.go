package web

import "context"

type confirmationKey struct{}

// WithConfirmation records on the context whether the submitted form
// carried the user's confirmation for a destructive action.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmationKey{}, confirmed)
}

// RequestConfirmer answers removal prompts from the confirmation the
// request carried. The blocking dialog already happened in the browser; an
// unconfirmed submit is treated as declined.
type RequestConfirmer struct{}

func (RequestConfirmer) Confirm(ctx context.Context, prompt string) bool {
	confirmed, _ := ctx.Value(confirmationKey{}).(bool)
	return confirmed
}
