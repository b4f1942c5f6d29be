package cmds

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotFunc    = errors.New("command must be a function")
	ErrBadReturns = errors.New("command must return nothing or an error")
)

// Command is either a function called with the following arguments,
// or a set of sub commands that become visible after its name.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("%w: got %T", ErrNotFunc, fn))
	}
	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("%w: got %v", ErrBadReturns, fnType))
		}
	default:
		panic(fmt.Errorf("%w: got %v", ErrBadReturns, fnType))
	}
	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
