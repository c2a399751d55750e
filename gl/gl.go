package gl

// Enum is a GL enumerated value. It is an alias so that constants and
// recorded arguments share the uint32 dynamic type.
type Enum = uint32

// GL is the subset of the OpenGL ES 2.0 API used by renderers in this
// project. Object names (buffers, textures, shaders, programs) are uint32,
// uniform and attribute locations are int32.
type GL interface {
	ActiveTexture(texture Enum)
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	BindBuffer(target Enum, buffer uint32)
	BindFramebuffer(target Enum, framebuffer uint32)
	BindRenderbuffer(target Enum, renderbuffer uint32)
	BindTexture(target Enum, texture uint32)
	BlendColor(red, green, blue, alpha float32)
	BlendEquation(mode Enum)
	BlendFunc(sfactor, dfactor Enum)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset, size int, data []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask uint32)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(depth float32)
	ClearStencil(s int32)
	ColorMask(red, green, blue, alpha bool)
	CompileShader(shader uint32)
	CreateProgram() uint32
	CreateShader(kind Enum) uint32
	CullFace(mode Enum)
	DeleteBuffer(buffer uint32)
	DeleteFramebuffer(framebuffer uint32)
	DeleteProgram(program uint32)
	DeleteRenderbuffer(renderbuffer uint32)
	DeleteShader(shader uint32)
	DeleteTexture(texture uint32)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	Disable(capability Enum)
	DisableVertexAttribArray(index uint32)
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, kind Enum, offset int)
	Enable(capability Enum)
	EnableVertexAttribArray(index uint32)
	Finish()
	Flush()
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, renderbuffer uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32)
	FrontFace(mode Enum)
	GenBuffer() uint32
	GenFramebuffer() uint32
	GenRenderbuffer() uint32
	GenTexture() uint32
	GenerateMipmap(target Enum)
	GetAttribLocation(program uint32, name string) int32
	GetError() Enum
	GetProgramInfoLog(program uint32) string
	GetProgramiv(program uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	GetShaderiv(shader uint32, pname Enum) int32
	GetUniformLocation(program uint32, name string) int32
	LineWidth(width float32)
	LinkProgram(program uint32)
	PixelStorei(pname Enum, param int32)
	ReadPixels(dst []byte, x, y, width, height int32, format, kind Enum)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)
	Scissor(x, y, width, height int32)
	ShaderSource(shader uint32, source string)
	TexImage2D(target Enum, level, internalFormat, width, height int32, format, kind Enum, data []byte)
	TexParameterf(target, pname Enum, param float32)
	TexParameteri(target, pname Enum, param int32)
	TexSubImage2D(target Enum, level, x, y, width, height int32, format, kind Enum, data []byte)
	Uniform1f(location int32, v0 float32)
	Uniform1i(location int32, v0 int32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, transpose bool, value []float32)
	UseProgram(program uint32)
	ValidateProgram(program uint32)
	VertexAttribPointer(index uint32, size int32, kind Enum, normalized bool, stride int32, offset int)
	Viewport(x, y, width, height int32)
}
