// Pin map for the Kampela board
// Binds every peripheral role to its (port, pin) location and electrical mode
package core

// Port identifies one GPIO bank of the EFM32PG23
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD

	NumPorts = 4
)

// MaxPinsPerPort is the number of pins covered by a port's MODEL/MODEH pair
const MaxPinsPerPort = 16

// String returns the port letter
func (p Port) String() string {
	if p >= NumPorts {
		return "?"
	}
	return string(rune('A' + p))
}

// Mode is the electrical configuration of a pin.
// Values are the EFM32 Series 2 MODEn field encodings.
type Mode uint8

const (
	ModeDisabled          Mode = 0  // Reset default, input and output disabled
	ModeInput             Mode = 1  // Plain input
	ModeInputPullUp       Mode = 2  // Input with pull resistor, pulled up while DOUT=1
	ModeInputPullUpFilter Mode = 3  // As ModeInputPullUp with glitch filter
	ModePushPull          Mode = 4  // Push-pull output
	ModeWiredAndPullUp    Mode = 10 // Open-drain output with pull-up
)

// PinRole names a peripheral line on the board
type PinRole uint8

const (
	FlashChipSelect PinRole = iota
	DisplayChipSelect
	DisplayDataCommand
	DisplayReset
	Power
	I2CEnable
	SCL
	SDA
	BusBusy
	EpaperMISO
	EpaperMOSI
	EpaperSCK
	PsramChipSelect
	PsramMISO
	PsramMOSI
	PsramSCK
	NFC
	TouchInterrupt

	NumRoles = 18
)

// Pin is the physical binding of a role
type Pin struct {
	Name string
	Port Port
	Bit  uint8
	Mode Mode
}

// Pin numbers within their port
const (
	FlashCSPin    = 0 // port C
	DispCSPin     = 2 // port D
	DispDCPin     = 3 // port D
	DispResPin    = 6 // port A
	PowPin        = 9 // port A
	EMISOPin      = 1 // port C
	EMOSIPin      = 2 // port C
	ESCKPin       = 3 // port C
	TouchIntPin   = 1 // port B
	PsramCSPin    = 4 // port C
	PsramMISOPin  = 5 // port C
	PsramMOSIPin  = 6 // port C
	PsramSCKPin   = 7 // port C
	I2CPin        = 4 // port A
	SCLPin        = 3 // port A
	SDAPin        = 5 // port A
	SPIBusyPin    = 4 // port B
	NFCPin        = 8 // port A
)

var pinTable = [NumRoles]Pin{
	FlashChipSelect:    {"flash_cs", PortC, FlashCSPin, ModePushPull},
	DisplayChipSelect:  {"disp_cs", PortD, DispCSPin, ModeInputPullUp},
	DisplayDataCommand: {"disp_dc", PortD, DispDCPin, ModePushPull},
	DisplayReset:       {"disp_res", PortA, DispResPin, ModePushPull},
	Power:              {"pow", PortA, PowPin, ModePushPull}, // 2.8 V rail
	I2CEnable:          {"i2c_pow", PortA, I2CPin, ModePushPull},
	SCL:                {"scl", PortA, SCLPin, ModeWiredAndPullUp},
	SDA:                {"sda", PortA, SDAPin, ModeWiredAndPullUp},
	BusBusy:            {"spi_busy", PortB, SPIBusyPin, ModeInput},
	EpaperMISO:         {"e_miso", PortC, EMISOPin, ModeInputPullUp},
	EpaperMOSI:         {"e_mosi", PortC, EMOSIPin, ModePushPull},
	EpaperSCK:          {"e_sck", PortC, ESCKPin, ModePushPull},
	PsramChipSelect:    {"psram_cs", PortC, PsramCSPin, ModePushPull},
	PsramMISO:          {"psram_miso", PortC, PsramMISOPin, ModeInputPullUp},
	PsramMOSI:          {"psram_mosi", PortC, PsramMOSIPin, ModePushPull},
	PsramSCK:           {"psram_sck", PortC, PsramSCKPin, ModePushPull},
	NFC:                {"nfc", PortA, NFCPin, ModeInputPullUpFilter},
	TouchInterrupt:     {"touch_int", PortB, TouchIntPin, ModeInput},
}

// Pin returns the binding for the role
func (r PinRole) Pin() Pin {
	return pinTable[r]
}

// OwnedMask returns the DOUT bits of a port that belong to a registry pin.
// Other bits are left to whatever ran before Initialize.
func OwnedMask(port Port) uint32 {
	var mask uint32
	for _, p := range pinTable {
		if p.Port == port {
			mask |= 1 << p.Bit
		}
	}
	return mask
}

// String returns the short line name used in traces
func (r PinRole) String() string {
	if r >= NumRoles {
		return "unknown"
	}
	return pinTable[r].Name
}
