package gl

// GetString and GetIntegerv parameter names consumed by the capability
// probe.
const (
	VENDOR         = 0x1F00
	RENDERER       = 0x1F01
	VERSION        = 0x1F02
	EXTENSIONS     = 0x1F03
	MAJOR_VERSION  = 0x821B
	MINOR_VERSION  = 0x821C
	NUM_EXTENSIONS = 0x821D
)

// Error codes returned by GetError.
const (
	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
	CONTEXT_LOST                  = 0x0507
)

// ErrorCodeName returns the symbolic name for a driver error code, or
// "UNKNOWN_ERROR" for codes outside the specification.
func ErrorCodeName(code uint32) string {
	switch code {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case STACK_OVERFLOW:
		return "STACK_OVERFLOW"
	case STACK_UNDERFLOW:
		return "STACK_UNDERFLOW"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case CONTEXT_LOST:
		return "CONTEXT_LOST"
	default:
		return "UNKNOWN_ERROR"
	}
}
