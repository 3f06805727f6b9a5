package gen

type options struct {
	pkg       string
	generator string
}

// Option configures [Render].
type Option func(*options)

// WithPackage sets the package clause of the generated file. It defaults to
// "convert".
func WithPackage(name string) Option {
	return func(o *options) {
		o.pkg = name
	}
}

// WithGenerator sets the command named in the "Code generated" header. It
// defaults to "convgen".
func WithGenerator(name string) Option {
	return func(o *options) {
		o.generator = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		pkg:       "convert",
		generator: "convgen",
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
