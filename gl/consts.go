package gl

//revive:disable:var-naming // Names follow the GL headers.

const (
	FALSE Enum = 0
	TRUE  Enum = 1

	NO_ERROR          Enum = 0
	INVALID_ENUM      Enum = 0x0500
	INVALID_VALUE     Enum = 0x0501
	INVALID_OPERATION Enum = 0x0502
	OUT_OF_MEMORY     Enum = 0x0505

	DEPTH_BUFFER_BIT   uint32 = 0x00000100
	STENCIL_BUFFER_BIT uint32 = 0x00000400
	COLOR_BUFFER_BIT   uint32 = 0x00004000

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	ZERO                Enum = 0
	ONE                 Enum = 1
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	FUNC_ADD            Enum = 0x8006

	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	CULL_FACE    Enum = 0x0B44
	DEPTH_TEST   Enum = 0x0B71
	STENCIL_TEST Enum = 0x0B90
	BLEND        Enum = 0x0BE2
	SCISSOR_TEST Enum = 0x0C11

	LESS   Enum = 0x0201
	LEQUAL Enum = 0x0203

	UNPACK_ALIGNMENT Enum = 0x0CF5
	PACK_ALIGNMENT   Enum = 0x0D05

	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	ALPHA     Enum = 0x1906
	RGB       Enum = 0x1907
	RGBA      Enum = 0x1908
	LUMINANCE Enum = 0x1909

	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	NEAREST            Enum = 0x2600
	LINEAR             Enum = 0x2601
	REPEAT             Enum = 0x2901
	CLAMP_TO_EDGE      Enum = 0x812F
	TEXTURE0           Enum = 0x84C0
	TEXTURE1           Enum = 0x84C1

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STREAM_DRAW          Enum = 0x88E0
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	VALIDATE_STATUS Enum = 0x8B83
	INFO_LOG_LENGTH Enum = 0x8B84

	FRAMEBUFFER          Enum = 0x8D40
	RENDERBUFFER         Enum = 0x8D41
	COLOR_ATTACHMENT0    Enum = 0x8CE0
	DEPTH_ATTACHMENT     Enum = 0x8D00
	DEPTH_COMPONENT16    Enum = 0x81A5
	FRAMEBUFFER_COMPLETE Enum = 0x8CD5
)
