package monitor

import (
	"fmt"
	"strconv"

	"nucleus/internal/buildinfo"
	"nucleus/kernel"
)

func (m *Monitor) registerCommands() {
	for _, cmd := range []command{
		{
			Name:  "spawn",
			Usage: "spawn <entry-addr>",
			Desc:  "create a process via the create_process syscall",
			Run:   cmdSpawn,
		},
		{
			Name:  "alloc",
			Usage: "alloc",
			Desc:  "allocate one physical page via the allocate_page syscall",
			Run:   cmdAlloc,
		},
		{
			Name:  "free",
			Usage: "free <addr>",
			Desc:  "free the page containing an address",
			Run:   cmdFree,
		},
		{
			Name:  "mkfile",
			Usage: "mkfile [perm]",
			Desc:  "create a file via the create_file syscall (default perm 0644)",
			Run:   cmdMkfile,
		},
		{
			Name:  "tick",
			Usage: "tick [n]",
			Desc:  "deliver n timer interrupts (default 1)",
			Run:   cmdTick,
		},
		{
			Name:    "ps",
			Aliases: []string{"procs"},
			Usage:   "ps",
			Desc:    "list the current process and the ready queue",
			Run:     cmdPs,
		},
		{
			Name:    "mem",
			Aliases: []string{"free-pages"},
			Usage:   "mem",
			Desc:    "show page pool usage",
			Run:     cmdMem,
		},
		{
			Name:  "version",
			Usage: "version",
			Desc:  "show build information",
			Run:   cmdVersion,
		},
		{
			Name:    "help",
			Aliases: []string{"?"},
			Usage:   "help",
			Desc:    "list commands",
			Run:     cmdHelp,
		},
		{
			Name:    "exit",
			Aliases: []string{"quit"},
			Usage:   "exit",
			Desc:    "leave the monitor",
			Run:     func(*Monitor, []string) error { return errExit },
		},
	} {
		if err := m.reg.register(cmd); err != nil {
			panic(err)
		}
	}
}

// parseNum accepts decimal and 0x-prefixed hex.
func parseNum(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return v, nil
}

func cmdSpawn(m *Monitor, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: spawn <entry-addr>")
	}
	entry, err := parseNum(args[0])
	if err != nil {
		return err
	}
	ret, errno := m.syscall(kernel.SysCreateProcess, entry)
	if errno != kernel.EOK {
		return &kernel.Error{Code: errno}
	}
	fmt.Fprintf(m.out, "pid %d entry %#x\n", ret, entry)
	return nil
}

func cmdAlloc(m *Monitor, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: alloc")
	}
	ret, errno := m.syscall(kernel.SysAllocPage, 0)
	if errno != kernel.EOK {
		return &kernel.Error{Code: errno}
	}
	fmt.Fprintf(m.out, "page at %#x\n", ret)
	return nil
}

func cmdFree(m *Monitor, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: free <addr>")
	}
	addr, err := parseNum(args[0])
	if err != nil {
		return err
	}
	if err := m.k.FreePage(uintptr(addr)); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "freed page containing %#x\n", addr)
	return nil
}

func cmdMkfile(m *Monitor, args []string) error {
	var perm uint64
	switch len(args) {
	case 0:
	case 1:
		var err error
		if perm, err = parseNum(args[0]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("usage: mkfile [perm]")
	}
	ret, errno := m.syscall(kernel.SysCreateFile, perm)
	if errno != kernel.EOK {
		return &kernel.Error{Code: errno}
	}
	fmt.Fprintf(m.out, "inode %d\n", ret)
	return nil
}

func cmdTick(m *Monitor, args []string) error {
	n := 1
	if len(args) == 1 {
		v, err := parseNum(args[0])
		if err != nil {
			return err
		}
		n = int(v)
	} else if len(args) > 1 {
		return fmt.Errorf("usage: tick [n]")
	}
	for i := 0; i < n; i++ {
		m.k.Route(kernel.VecTimer, nil)
	}
	fmt.Fprintf(m.out, "delivered %d timer interrupt(s)\n", n)
	return nil
}

func cmdPs(m *Monitor, args []string) error {
	s := m.k.Snapshot()
	if s.Current == nil {
		fmt.Fprintln(m.out, "current: none")
	} else {
		fmt.Fprintf(m.out, "current: pid %d (%s)\n", s.Current.PID, s.Current.State)
	}
	if len(s.Ready) == 0 {
		fmt.Fprintln(m.out, "ready:   empty")
		return nil
	}
	for i, p := range s.Ready {
		fmt.Fprintf(m.out, "ready[%d]: pid %d (%s)\n", i, p.PID, p.State)
	}
	return nil
}

func cmdMem(m *Monitor, args []string) error {
	free := m.k.FreePages()
	fmt.Fprintf(m.out, "%d/%d pages free (%d KiB in use)\n",
		free, kernel.NumPages, (kernel.NumPages-free)*kernel.PageSize/1024)
	return nil
}

func cmdVersion(m *Monitor, args []string) error {
	fmt.Fprintf(m.out, "nucleus %s (commit %s, built %s)\n",
		buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	return nil
}

func cmdHelp(m *Monitor, args []string) error {
	for _, name := range m.reg.names() {
		cmd := m.reg.primary[name]
		fmt.Fprintf(m.out, "%-12s %s\n", cmd.Usage, cmd.Desc)
	}
	return nil
}
