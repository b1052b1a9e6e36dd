// Package monitor implements the interactive console that drives the kernel:
// it parses command lines, issues syscalls through the interrupt router, and
// renders scheduler, allocator, and inode-table state.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/shlex"

	"nucleus/kernel"
	"nucleus/tracing"
)

const prompt = "nucleus> "

// errExit signals a clean monitor shutdown from the exit command.
var errExit = errors.New("exit")

// Monitor is an interactive front end for one kernel instance.
type Monitor struct {
	k   *kernel.Kernel
	out io.Writer
	reg *registry
}

// New creates a monitor writing its output to out.
func New(k *kernel.Kernel, out io.Writer) *Monitor {
	m := &Monitor{k: k, out: out, reg: newRegistry()}
	m.registerCommands()
	return m
}

// Run reads command lines from in until EOF or the exit command.
func (m *Monitor) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(m.out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(m.out)
			return sc.Err()
		}
		if err := m.Execute(sc.Text()); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			fmt.Fprintf(m.out, "error: %v\n", err)
		}
	}
}

// Execute parses and runs a single command line. A blank line is a no-op.
func (m *Monitor) Execute(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd, ok := m.reg.resolve(args[0])
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	return cmd.Run(m, args[1:])
}

// syscall issues one system call through the interrupt router, exactly the
// way trap glue would: a trap frame in, a result and errno out. Each call is
// wrapped in a tracing span.
func (m *Monitor) syscall(num kernel.Syscall, arg uint64) (uint64, kernel.Errno) {
	_, span := tracing.StartSpan(context.Background(), "syscall."+num.String())

	frame := kernel.TrapFrame{Num: num, Arg: arg}
	m.k.Route(kernel.VecSyscall, &frame)

	span.WithAttributes(map[string]string{"errno": frame.Err.String()})
	if frame.Err != kernel.EOK {
		span.End(&kernel.Error{Code: frame.Err})
	} else {
		span.End(nil)
	}
	return frame.Ret, frame.Err
}
