package glcmd

// Buffer bits accepted by Clear.
const (
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000
)

// Server-side capabilities accepted by Enable and Disable.
const (
	CULL_FACE                = 0x0B44
	DEPTH_TEST               = 0x0B71
	STENCIL_TEST             = 0x0B90
	DITHER                   = 0x0BD0
	BLEND                    = 0x0BE2
	SCISSOR_TEST             = 0x0C11
	POLYGON_OFFSET_FILL      = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE = 0x809E
	SAMPLE_COVERAGE          = 0x80A0
	MULTISAMPLE              = 0x809D
	FRAMEBUFFER_SRGB         = 0x8DB9
	DEBUG_OUTPUT             = 0x92E0
)

// Primitive modes accepted by DrawArrays.
const (
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006
)

// Buffer binding targets accepted by BindBuffer.
const (
	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	PIXEL_PACK_BUFFER    = 0x88EB
	PIXEL_UNPACK_BUFFER  = 0x88EC
	UNIFORM_BUFFER       = 0x8A11
	COPY_READ_BUFFER     = 0x8F36
	COPY_WRITE_BUFFER    = 0x8F37
)

var validClearBits = uint32(COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT | STENCIL_BUFFER_BIT)

var validCapabilities = map[uint32]struct{}{
	CULL_FACE:                {},
	DEPTH_TEST:               {},
	STENCIL_TEST:             {},
	DITHER:                   {},
	BLEND:                    {},
	SCISSOR_TEST:             {},
	POLYGON_OFFSET_FILL:      {},
	SAMPLE_ALPHA_TO_COVERAGE: {},
	SAMPLE_COVERAGE:          {},
	MULTISAMPLE:              {},
	FRAMEBUFFER_SRGB:         {},
	DEBUG_OUTPUT:             {},
}

var validDrawModes = map[uint32]struct{}{
	POINTS:         {},
	LINES:          {},
	LINE_LOOP:      {},
	LINE_STRIP:     {},
	TRIANGLES:      {},
	TRIANGLE_STRIP: {},
	TRIANGLE_FAN:   {},
}

var validBufferTargets = map[uint32]struct{}{
	ARRAY_BUFFER:         {},
	ELEMENT_ARRAY_BUFFER: {},
	PIXEL_PACK_BUFFER:    {},
	PIXEL_UNPACK_BUFFER:  {},
	UNIFORM_BUFFER:       {},
	COPY_READ_BUFFER:     {},
	COPY_WRITE_BUFFER:    {},
}
