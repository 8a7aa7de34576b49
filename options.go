package nanorm

import "database/sql"

// Option configures a single executor call. The three parameter-binding
// strategies are mutually exclusive per call: give no option for a
// parameterless statement, [Args] for a pre-built list, or [Bind] for a
// configuration callback. If more than one is given, the last wins.
type Option func(*settings)

type settings struct {
	args     []any
	binder   func(*Params)
	dialect  Placeholder
	hasStyle bool
}

// Args attaches an ordered list of parameters verbatim. Values may include
// sql.Named entries; these pass through to drivers with native named-argument
// support, or resolve :name tokens when [Dialect] is in effect.
func Args(args ...any) Option {
	return func(s *settings) {
		s.args = args
		s.binder = nil
	}
}

// Bind registers a callback that receives the command's empty [Params]
// collection and populates it. Use it when the parameter set is
// variable-length or conditionally assembled and a flat list is awkward.
func Bind(fn func(*Params)) Option {
	return func(s *settings) {
		s.binder = fn
		s.args = nil
	}
}

// Dialect enables statement rewriting for the target placeholder style:
// :name tokens are resolved against the named parameters and every
// placeholder is rewritten to the style ph. Required for drivers, such as
// lib/pq, that accept only positional $n parameters.
func Dialect(ph Placeholder) Option {
	return func(s *settings) {
		s.dialect = ph
		s.hasStyle = true
	}
}

// collect resolves the binding strategy into a parameter collection.
func (s *settings) collect() *Params {
	ps := &Params{}
	if s.binder != nil {
		s.binder(ps)
		return ps
	}
	for _, a := range s.args {
		if na, ok := a.(sql.NamedArg); ok {
			ps.AddNamed(na.Name, na.Value)
		} else {
			ps.Add(a)
		}
	}
	return ps
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, o := range opts {
		o(s)
	}
	return s
}
