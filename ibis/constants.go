package ibis

// Wire-level constants of the IBIS telegram protocol.
const (
	// CarriageReturn terminates the checksummed portion of every telegram
	CarriageReturn = '\r'

	// Escape starts the BS210 address selection command
	Escape = 0x1B

	// ParitySeed is the initial accumulator of the XOR parity fold
	ParitySeed = 0x7F

	// TrailerSize is the number of bytes after the message body (CR + parity)
	TrailerSize = 2

	// StatusResponseSize is the size of a display status response: 'a', status, CR, parity
	StatusResponseSize = 4
)

// Value ranges accepted by the telegram factories.
const (
	MinLine        = 1
	MaxLine        = 999
	MinDestination = 0
	MaxDestination = 999
	MinAddress     = 0
	MaxAddress     = 15
)

// Status characters sent back by a display in response to a status query.
const (
	StatusCharOK           = '3'
	StatusCharReadyForData = '0'
)

// selectPrefix is transmitted before the BS210 address selection command
// but is not covered by the parity byte.
var selectPrefix = []byte{0x0D, 0x72}
