package kernel

// Syscall identifies a kernel system call.
type Syscall uint16

const (
	SysCreateProcess Syscall = 1
	SysAllocPage     Syscall = 2
	SysCreateFile    Syscall = 3
)

func (s Syscall) String() string {
	switch s {
	case SysCreateProcess:
		return "create_process"
	case SysAllocPage:
		return "allocate_page"
	case SysCreateFile:
		return "create_file"
	default:
		return "unknown"
	}
}

// defaultFilePerm is applied when create_file is invoked without an explicit
// permission argument.
const defaultFilePerm = 0o644

// Dispatch resolves a syscall number to its subsystem and delegates. It
// holds no business logic of its own: every side effect happens in the
// scheduler, the page allocator, or the file store. The result is a tagged
// (value, error) pair: an address or PID is never conflated with an error
// code, since 0 is a valid address and error values carry their own type.
func (k *Kernel) Dispatch(num Syscall, arg uint64) (uint64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.dispatch(num, arg)
}

func (k *Kernel) dispatch(num Syscall, arg uint64) (uint64, error) {
	switch num {
	case SysCreateProcess:
		pid, err := k.createProcess(uintptr(arg))
		if err != nil {
			return 0, err
		}
		return uint64(pid), nil

	case SysAllocPage:
		page, err := k.pages.alloc()
		if err != nil {
			return 0, err
		}
		return uint64(page.Addr()), nil

	case SysCreateFile:
		if k.files == nil {
			// No file store wired: the syscall number has no handler.
			return 0, ErrUnknownSyscall
		}
		perm := uint32(arg)
		if perm == 0 {
			perm = defaultFilePerm
		}
		ino, err := k.files.Create(perm)
		if err != nil {
			return 0, ErrCapacityExceeded
		}
		return uint64(ino), nil

	default:
		return 0, ErrUnknownSyscall
	}
}
