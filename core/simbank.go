package core

// BankOpKind is the kind of register access a SimBank logged
type BankOpKind uint8

const (
	OpWriteMode BankOpKind = iota + 1
	OpReadOutput
	OpWriteOutput
)

// BankOp is one logged register access
type BankOp struct {
	Kind  BankOpKind
	Port  Port
	Half  ModeHalf
	Value uint32
}

// SimBank is an in-memory RegisterBank. It starts at hardware reset state
// (all mode fields Disabled, all outputs low) and logs every access.
type SimBank struct {
	Mode [NumPorts][2]uint32
	Out  [NumPorts]uint32
	Log  []BankOp
}

// NewSimBank returns a bank in reset state
func NewSimBank() *SimBank {
	return &SimBank{}
}

func (b *SimBank) WriteMode(port Port, half ModeHalf, value uint32) {
	b.Mode[port][half] = value
	b.Log = append(b.Log, BankOp{Kind: OpWriteMode, Port: port, Half: half, Value: value})
}

func (b *SimBank) ReadOutput(port Port) uint32 {
	value := b.Out[port]
	b.Log = append(b.Log, BankOp{Kind: OpReadOutput, Port: port, Value: value})
	return value
}

func (b *SimBank) WriteOutput(port Port, value uint32) {
	b.Out[port] = value
	b.Log = append(b.Log, BankOp{Kind: OpWriteOutput, Port: port, Value: value})
}

// ModeOf decodes the mode field of one pin from the mode registers.
// Pins outside the port's 16 mode fields report ModeDisabled.
func (b *SimBank) ModeOf(port Port, bit uint8) Mode {
	if port >= NumPorts || bit >= MaxPinsPerPort {
		return ModeDisabled
	}
	half := bit / pinsPerHalf
	shift := uint32(bit%pinsPerHalf) * modeFieldBits
	return Mode((b.Mode[port][half] >> shift) & 0xF)
}

// Writes returns only the write accesses from the log
func (b *SimBank) Writes() []BankOp {
	var writes []BankOp
	for _, op := range b.Log {
		if op.Kind != OpReadOutput {
			writes = append(writes, op)
		}
	}
	return writes
}
