package logger

import "context"

type invocationKey struct{}

// Invocation identifies a single CLI run for log correlation.
type Invocation struct {
	ID      string
	Command string
}

// ContextWithInvocation returns a derived context carrying inv.
func ContextWithInvocation(ctx context.Context, inv Invocation) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, invocationKey{}, inv)
}

// InvocationFromContext extracts the Invocation stored in ctx.
func InvocationFromContext(ctx context.Context) Invocation {
	if ctx == nil {
		return Invocation{}
	}
	if inv, ok := ctx.Value(invocationKey{}).(Invocation); ok {
		return inv
	}
	return Invocation{}
}

func contextFields(ctx context.Context) []Field {
	return InvocationFromContext(ctx).fields()
}

func (i Invocation) fields() []Field {
	var fields []Field
	if i.ID != "" {
		fields = append(fields, String("invocation_id", i.ID))
	}
	if i.Command != "" {
		fields = append(fields, String("command", i.Command))
	}
	return fields
}
