package kernel

// Errno identifies a kernel error condition on the syscall ABI boundary.
type Errno uint16

const (
	EOK Errno = iota
	// ENOMEM: no free page available.
	ENOMEM
	// ERANGE: address or index outside the managed pool.
	ERANGE
	// ENOSPC: no free inode slot in the file metadata store.
	ENOSPC
	// ENOSYS: unrecognized syscall number.
	ENOSYS
	// EFREE: freeing a page that is already free.
	EFREE
	// EPIDS: the PID counter would wrap; no PID is ever reused.
	EPIDS
	// EINVAL: illegal process state transition or malformed request.
	EINVAL
)

func (e Errno) String() string {
	switch e {
	case EOK:
		return "ok"
	case ENOMEM:
		return "out of memory"
	case ERANGE:
		return "out of range"
	case ENOSPC:
		return "capacity exceeded"
	case ENOSYS:
		return "unknown syscall"
	case EFREE:
		return "double free"
	case EPIDS:
		return "pid space exhausted"
	case EINVAL:
		return "invalid operation"
	default:
		return "unknown"
	}
}

// Error is a typed, recoverable kernel error. Kernel failures are always
// reported to the immediate caller; none of them halt the kernel, and no
// failure is ever encoded as a sentinel address or PID.
type Error struct {
	Code Errno
}

func (e *Error) Error() string { return e.Code.String() }

// Is matches errors carrying the same Errno, so callers can use errors.Is
// against the sentinel values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrOutOfMemory      = &Error{Code: ENOMEM}
	ErrOutOfRange       = &Error{Code: ERANGE}
	ErrCapacityExceeded = &Error{Code: ENOSPC}
	ErrUnknownSyscall   = &Error{Code: ENOSYS}
	ErrDoubleFree       = &Error{Code: EFREE}
	ErrPIDExhausted     = &Error{Code: EPIDS}
	ErrBadTransition    = &Error{Code: EINVAL}
)
