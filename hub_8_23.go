package hubfloat

// Format parameters for the default build: an 8-bit exponent and 23
// explicit mantissa bits, emulating IEEE single precision extended with
// one hub significand bit. Changing these changes the shift, the bias
// constants and the representable range.
const (
	expBits  = 8
	mantBits = 23
)
