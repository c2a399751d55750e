package mock

import (
	"slices"

	"github.com/tarmac-project/spy"
	"github.com/tarmac-project/spy/gl"
	"go.uber.org/zap"
)

// Config controls construction of a GL mock.
type Config struct {
	// Ledger receives every call. If nil, a new Ledger is created.
	Ledger *spy.Ledger

	// Logger is passed to the Ledger created when Ledger is nil.
	Logger *zap.Logger
}

// GL implements gl.GL by recording every call in a spy.Ledger under the Go
// method name, arguments in declared order. Slices are copied at call time.
//
// Methods with results return zero values, except:
//   - Gen* and Create* return fresh object names starting at 1;
//   - status queries (CheckFramebufferStatus, COMPILE_STATUS, LINK_STATUS,
//     VALIDATE_STATUS) report success.
type GL struct {
	ledger *spy.Ledger

	// names is the last object name handed out.
	names uint32
}

// Compile-time check: ensure GL implements the gl.GL interface.
var _ gl.GL = (*GL)(nil)

// New creates a new GL mock.
func New(config Config) *GL {
	ledger := config.Ledger
	if ledger == nil {
		ledger = spy.New(spy.Config{Logger: config.Logger})
	}
	return &GL{ledger: ledger}
}

// Ledger returns the ledger the mock records into.
func (m *GL) Ledger() *spy.Ledger { return m.ledger }

// Verify is shorthand for m.Ledger().Verify.
func (m *GL) Verify(method string, expected ...any) error {
	return m.ledger.Verify(method, expected...)
}

func (m *GL) record(method string, args ...any) { m.ledger.Record(method, args...) }

func (m *GL) nextName() uint32 {
	m.names++
	return m.names
}

func (m *GL) ActiveTexture(texture gl.Enum) { m.record("ActiveTexture", texture) }

func (m *GL) AttachShader(program, shader uint32) { m.record("AttachShader", program, shader) }

func (m *GL) BindAttribLocation(program, index uint32, name string) {
	m.record("BindAttribLocation", program, index, name)
}

func (m *GL) BindBuffer(target gl.Enum, buffer uint32) { m.record("BindBuffer", target, buffer) }

func (m *GL) BindFramebuffer(target gl.Enum, framebuffer uint32) {
	m.record("BindFramebuffer", target, framebuffer)
}

func (m *GL) BindRenderbuffer(target gl.Enum, renderbuffer uint32) {
	m.record("BindRenderbuffer", target, renderbuffer)
}

func (m *GL) BindTexture(target gl.Enum, texture uint32) { m.record("BindTexture", target, texture) }

func (m *GL) BlendColor(red, green, blue, alpha float32) {
	m.record("BlendColor", red, green, blue, alpha)
}

func (m *GL) BlendEquation(mode gl.Enum) { m.record("BlendEquation", mode) }

func (m *GL) BlendFunc(sfactor, dfactor gl.Enum) { m.record("BlendFunc", sfactor, dfactor) }

func (m *GL) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	m.record("BufferData", target, size, slices.Clone(data), usage)
}

func (m *GL) BufferSubData(target gl.Enum, offset, size int, data []byte) {
	m.record("BufferSubData", target, offset, size, slices.Clone(data))
}

func (m *GL) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	m.record("CheckFramebufferStatus", target)
	return gl.FRAMEBUFFER_COMPLETE
}

func (m *GL) Clear(mask uint32) { m.record("Clear", mask) }

func (m *GL) ClearColor(red, green, blue, alpha float32) {
	m.record("ClearColor", red, green, blue, alpha)
}

func (m *GL) ClearDepthf(depth float32) { m.record("ClearDepthf", depth) }

func (m *GL) ClearStencil(s int32) { m.record("ClearStencil", s) }

func (m *GL) ColorMask(red, green, blue, alpha bool) {
	m.record("ColorMask", red, green, blue, alpha)
}

func (m *GL) CompileShader(shader uint32) { m.record("CompileShader", shader) }

func (m *GL) CreateProgram() uint32 {
	m.record("CreateProgram")
	return m.nextName()
}

func (m *GL) CreateShader(kind gl.Enum) uint32 {
	m.record("CreateShader", kind)
	return m.nextName()
}

func (m *GL) CullFace(mode gl.Enum) { m.record("CullFace", mode) }

func (m *GL) DeleteBuffer(buffer uint32) { m.record("DeleteBuffer", buffer) }

func (m *GL) DeleteFramebuffer(framebuffer uint32) { m.record("DeleteFramebuffer", framebuffer) }

func (m *GL) DeleteProgram(program uint32) { m.record("DeleteProgram", program) }

func (m *GL) DeleteRenderbuffer(renderbuffer uint32) { m.record("DeleteRenderbuffer", renderbuffer) }

func (m *GL) DeleteShader(shader uint32) { m.record("DeleteShader", shader) }

func (m *GL) DeleteTexture(texture uint32) { m.record("DeleteTexture", texture) }

func (m *GL) DepthFunc(fn gl.Enum) { m.record("DepthFunc", fn) }

func (m *GL) DepthMask(flag bool) { m.record("DepthMask", flag) }

func (m *GL) Disable(capability gl.Enum) { m.record("Disable", capability) }

func (m *GL) DisableVertexAttribArray(index uint32) { m.record("DisableVertexAttribArray", index) }

func (m *GL) DrawArrays(mode gl.Enum, first, count int32) { m.record("DrawArrays", mode, first, count) }

func (m *GL) DrawElements(mode gl.Enum, count int32, kind gl.Enum, offset int) {
	m.record("DrawElements", mode, count, kind, offset)
}

func (m *GL) Enable(capability gl.Enum) { m.record("Enable", capability) }

func (m *GL) EnableVertexAttribArray(index uint32) { m.record("EnableVertexAttribArray", index) }

func (m *GL) Finish() { m.record("Finish") }

func (m *GL) Flush() { m.record("Flush") }

func (m *GL) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, renderbuffer uint32) {
	m.record("FramebufferRenderbuffer", target, attachment, rbTarget, renderbuffer)
}

func (m *GL) FramebufferTexture2D(target, attachment, texTarget gl.Enum, texture uint32, level int32) {
	m.record("FramebufferTexture2D", target, attachment, texTarget, texture, level)
}

func (m *GL) FrontFace(mode gl.Enum) { m.record("FrontFace", mode) }

func (m *GL) GenBuffer() uint32 {
	m.record("GenBuffer")
	return m.nextName()
}

func (m *GL) GenFramebuffer() uint32 {
	m.record("GenFramebuffer")
	return m.nextName()
}

func (m *GL) GenRenderbuffer() uint32 {
	m.record("GenRenderbuffer")
	return m.nextName()
}

func (m *GL) GenTexture() uint32 {
	m.record("GenTexture")
	return m.nextName()
}

func (m *GL) GenerateMipmap(target gl.Enum) { m.record("GenerateMipmap", target) }

func (m *GL) GetAttribLocation(program uint32, name string) int32 {
	m.record("GetAttribLocation", program, name)
	return 0
}

func (m *GL) GetError() gl.Enum {
	m.record("GetError")
	return gl.NO_ERROR
}

func (m *GL) GetProgramInfoLog(program uint32) string {
	m.record("GetProgramInfoLog", program)
	return ""
}

func (m *GL) GetProgramiv(program uint32, pname gl.Enum) int32 {
	m.record("GetProgramiv", program, pname)
	return statusParam(pname)
}

func (m *GL) GetShaderInfoLog(shader uint32) string {
	m.record("GetShaderInfoLog", shader)
	return ""
}

func (m *GL) GetShaderiv(shader uint32, pname gl.Enum) int32 {
	m.record("GetShaderiv", shader, pname)
	return statusParam(pname)
}

func (m *GL) GetUniformLocation(program uint32, name string) int32 {
	m.record("GetUniformLocation", program, name)
	return 0
}

func (m *GL) LineWidth(width float32) { m.record("LineWidth", width) }

func (m *GL) LinkProgram(program uint32) { m.record("LinkProgram", program) }

func (m *GL) PixelStorei(pname gl.Enum, param int32) { m.record("PixelStorei", pname, param) }

func (m *GL) ReadPixels(dst []byte, x, y, width, height int32, format, kind gl.Enum) {
	m.record("ReadPixels", slices.Clone(dst), x, y, width, height, format, kind)
}

func (m *GL) RenderbufferStorage(target, internalFormat gl.Enum, width, height int32) {
	m.record("RenderbufferStorage", target, internalFormat, width, height)
}

func (m *GL) Scissor(x, y, width, height int32) { m.record("Scissor", x, y, width, height) }

func (m *GL) ShaderSource(shader uint32, source string) { m.record("ShaderSource", shader, source) }

func (m *GL) TexImage2D(target gl.Enum, level, internalFormat, width, height int32, format, kind gl.Enum, data []byte) {
	m.record("TexImage2D", target, level, internalFormat, width, height, format, kind, slices.Clone(data))
}

func (m *GL) TexParameterf(target, pname gl.Enum, param float32) {
	m.record("TexParameterf", target, pname, param)
}

func (m *GL) TexParameteri(target, pname gl.Enum, param int32) {
	m.record("TexParameteri", target, pname, param)
}

func (m *GL) TexSubImage2D(target gl.Enum, level, x, y, width, height int32, format, kind gl.Enum, data []byte) {
	m.record("TexSubImage2D", target, level, x, y, width, height, format, kind, slices.Clone(data))
}

func (m *GL) Uniform1f(location int32, v0 float32) { m.record("Uniform1f", location, v0) }

func (m *GL) Uniform1i(location int32, v0 int32) { m.record("Uniform1i", location, v0) }

func (m *GL) Uniform2f(location int32, v0, v1 float32) { m.record("Uniform2f", location, v0, v1) }

func (m *GL) Uniform3f(location int32, v0, v1, v2 float32) {
	m.record("Uniform3f", location, v0, v1, v2)
}

func (m *GL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	m.record("Uniform4f", location, v0, v1, v2, v3)
}

func (m *GL) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	m.record("UniformMatrix4fv", location, transpose, slices.Clone(value))
}

func (m *GL) UseProgram(program uint32) { m.record("UseProgram", program) }

func (m *GL) ValidateProgram(program uint32) { m.record("ValidateProgram", program) }

func (m *GL) VertexAttribPointer(index uint32, size int32, kind gl.Enum, normalized bool, stride int32, offset int) {
	m.record("VertexAttribPointer", index, size, kind, normalized, stride, offset)
}

func (m *GL) Viewport(x, y, width, height int32) { m.record("Viewport", x, y, width, height) }

// statusParam answers shader and program parameter queries.
func statusParam(pname gl.Enum) int32 {
	switch pname {
	case gl.COMPILE_STATUS, gl.LINK_STATUS, gl.VALIDATE_STATUS:
		return int32(gl.TRUE)
	}
	return 0
}
