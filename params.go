package nanorm

import (
	"database/sql"
	"strings"
)

// Params is a command's parameter collection. It is handed, initially empty,
// to the callback registered with [Bind], which populates it with any number
// of positional and named parameters. nanorm never checks the collection
// against the statement text; whatever is present at execution time is
// attached, and mismatches are the driver's to report.
type Params struct {
	list []param
}

type param struct {
	name  string
	value any
}

// Add appends a positional parameter.
func (p *Params) Add(value any) {
	p.list = append(p.list, param{value: value})
}

// AddNamed appends a named parameter. With a driver that supports named
// arguments natively (sqlite), the name is passed through as sql.Named;
// under [Dialect] rebinding the name resolves a :name token in the text.
func (p *Params) AddNamed(name string, value any) {
	p.list = append(p.list, param{name: name, value: value})
}

// AddOut appends a named output parameter wrapping dest in sql.Out, for the
// drivers that support output parameters.
func (p *Params) AddOut(name string, dest any) {
	p.list = append(p.list, param{name: name, value: sql.Out{Dest: dest}})
}

// Len reports the number of parameters added so far.
func (p *Params) Len() int { return len(p.list) }

func (p *Params) hasNamed() bool {
	for _, e := range p.list {
		if e.name != "" {
			return true
		}
	}
	return false
}

// driverArgs renders the collection as the argument list handed to
// database/sql, preserving insertion order.
func (p *Params) driverArgs() []any {
	if len(p.list) == 0 {
		return nil
	}
	args := make([]any, len(p.list))
	for i, e := range p.list {
		if e.name != "" {
			args[i] = sql.Named(e.name, e.value)
		} else {
			args[i] = e.value
		}
	}
	return args
}

// lookup resolves a named parameter case-insensitively.
func (p *Params) lookup(name string) (any, bool) {
	for _, e := range p.list {
		if e.name != "" && strings.EqualFold(e.name, name) {
			return e.value, true
		}
	}
	return nil, false
}

// positional returns the unnamed parameters in insertion order.
func (p *Params) positional() []any {
	var args []any
	for _, e := range p.list {
		if e.name == "" {
			args = append(args, e.value)
		}
	}
	return args
}
