package taibf

type Interrupt struct {
	Breakpoint bool
}

var (
	InterruptBreakpoint = &Interrupt{
		Breakpoint: true,
	}
)
