package mico

// Option configures an Encoder or Marshal.
type Option func(*options) error

type options struct {
	indent int
}

const defaultIndent = 0

// Indent returns an Option that prefixes every list item line with n space
// characters.
//
// n must not be negative.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return &OptionError{Option: "Indent", Value: n, Err: ErrNegativeIndent}
		}
		o.indent = n
		return nil
	}
}

func applyOptions(opts []Option) (options, error) {
	o := options{indent: defaultIndent}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}
