package form

// Default supplies the value of an omitted field. It is one of Literal,
// Ref or Computed.
type Default interface {
	resolve(ctx *Context) (any, error)
	dependencies() []string
}

type literal struct {
	value any
}

// Literal defaults to a fixed value
func Literal(v any) Default {
	return literal{value: v}
}

func (d literal) resolve(*Context) (any, error) { return d.value, nil }
func (d literal) dependencies() []string        { return nil }

type reference struct {
	name string
}

// Ref defaults to the already validated value of an earlier field
func Ref(name string) Default {
	return reference{name: name}
}

func (d reference) resolve(ctx *Context) (any, error) { return ctx.Get(d.name), nil }
func (d reference) dependencies() []string            { return []string{d.name} }

type computed struct {
	fn   func(*Context) (any, error)
	deps []string
}

// Computed defaults to the result of fn. deps names the earlier fields fn reads.
func Computed(fn func(*Context) (any, error), deps ...string) Default {
	return computed{fn: fn, deps: deps}
}

func (d computed) resolve(ctx *Context) (any, error) { return d.fn(ctx) }
func (d computed) dependencies() []string            { return d.deps }
