package mock_test

import (
	"errors"
	"testing"

	"github.com/tarmac-project/spy"
	"github.com/tarmac-project/spy/gl"
	"github.com/tarmac-project/spy/gl/mock"
	"github.com/tarmac-project/spy/match"
	"github.com/tarmac-project/spy/spytest"
)

type ForwardCase struct {
	name string
	call func(g gl.GL)
	args []any
}

func TestForwarding(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	matrix := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

	tt := []ForwardCase{
		{"ActiveTexture", func(g gl.GL) { g.ActiveTexture(gl.TEXTURE0) }, []any{gl.TEXTURE0}},
		{"AttachShader", func(g gl.GL) { g.AttachShader(1, 2) }, []any{uint32(1), uint32(2)}},
		{"BindAttribLocation", func(g gl.GL) { g.BindAttribLocation(1, 0, "a_position") }, []any{uint32(1), uint32(0), "a_position"}},
		{"BindBuffer", func(g gl.GL) { g.BindBuffer(gl.ARRAY_BUFFER, 5) }, []any{gl.ARRAY_BUFFER, uint32(5)}},
		{"BindFramebuffer", func(g gl.GL) { g.BindFramebuffer(gl.FRAMEBUFFER, 3) }, []any{gl.FRAMEBUFFER, uint32(3)}},
		{"BindRenderbuffer", func(g gl.GL) { g.BindRenderbuffer(gl.RENDERBUFFER, 4) }, []any{gl.RENDERBUFFER, uint32(4)}},
		{"BindTexture", func(g gl.GL) { g.BindTexture(gl.TEXTURE_2D, 7) }, []any{gl.TEXTURE_2D, uint32(7)}},
		{"BlendColor", func(g gl.GL) { g.BlendColor(0, 0, 0, 1) }, []any{float32(0), float32(0), float32(0), float32(1)}},
		{"BlendEquation", func(g gl.GL) { g.BlendEquation(gl.FUNC_ADD) }, []any{gl.FUNC_ADD}},
		{"BlendFunc", func(g gl.GL) { g.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA) }, []any{gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA}},
		{"BufferData", func(g gl.GL) { g.BufferData(gl.ARRAY_BUFFER, 4, data, gl.STATIC_DRAW) }, []any{gl.ARRAY_BUFFER, 4, data, gl.STATIC_DRAW}},
		{"BufferSubData", func(g gl.GL) { g.BufferSubData(gl.ARRAY_BUFFER, 0, 4, data) }, []any{gl.ARRAY_BUFFER, 0, 4, data}},
		{"CheckFramebufferStatus", func(g gl.GL) { g.CheckFramebufferStatus(gl.FRAMEBUFFER) }, []any{gl.FRAMEBUFFER}},
		{"Clear", func(g gl.GL) { g.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }, []any{gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT}},
		{"ClearColor", func(g gl.GL) { g.ClearColor(1, 0, 0, 1) }, []any{float32(1), float32(0), float32(0), float32(1)}},
		{"ClearDepthf", func(g gl.GL) { g.ClearDepthf(1) }, []any{float32(1)}},
		{"ClearStencil", func(g gl.GL) { g.ClearStencil(0) }, []any{int32(0)}},
		{"ColorMask", func(g gl.GL) { g.ColorMask(true, true, true, false) }, []any{true, true, true, false}},
		{"CompileShader", func(g gl.GL) { g.CompileShader(2) }, []any{uint32(2)}},
		{"CreateProgram", func(g gl.GL) { g.CreateProgram() }, []any{}},
		{"CreateShader", func(g gl.GL) { g.CreateShader(gl.VERTEX_SHADER) }, []any{gl.VERTEX_SHADER}},
		{"CullFace", func(g gl.GL) { g.CullFace(gl.BACK) }, []any{gl.BACK}},
		{"DeleteBuffer", func(g gl.GL) { g.DeleteBuffer(5) }, []any{uint32(5)}},
		{"DeleteFramebuffer", func(g gl.GL) { g.DeleteFramebuffer(3) }, []any{uint32(3)}},
		{"DeleteProgram", func(g gl.GL) { g.DeleteProgram(1) }, []any{uint32(1)}},
		{"DeleteRenderbuffer", func(g gl.GL) { g.DeleteRenderbuffer(4) }, []any{uint32(4)}},
		{"DeleteShader", func(g gl.GL) { g.DeleteShader(2) }, []any{uint32(2)}},
		{"DeleteTexture", func(g gl.GL) { g.DeleteTexture(7) }, []any{uint32(7)}},
		{"DepthFunc", func(g gl.GL) { g.DepthFunc(gl.LEQUAL) }, []any{gl.LEQUAL}},
		{"DepthMask", func(g gl.GL) { g.DepthMask(false) }, []any{false}},
		{"Disable", func(g gl.GL) { g.Disable(gl.BLEND) }, []any{gl.BLEND}},
		{"DisableVertexAttribArray", func(g gl.GL) { g.DisableVertexAttribArray(0) }, []any{uint32(0)}},
		{"DrawArrays", func(g gl.GL) { g.DrawArrays(gl.TRIANGLES, 0, 6) }, []any{gl.TRIANGLES, int32(0), int32(6)}},
		{"DrawElements", func(g gl.GL) { g.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_SHORT, 0) }, []any{gl.TRIANGLES, int32(6), gl.UNSIGNED_SHORT, 0}},
		{"Enable", func(g gl.GL) { g.Enable(gl.DEPTH_TEST) }, []any{gl.DEPTH_TEST}},
		{"EnableVertexAttribArray", func(g gl.GL) { g.EnableVertexAttribArray(1) }, []any{uint32(1)}},
		{"Finish", func(g gl.GL) { g.Finish() }, []any{}},
		{"Flush", func(g gl.GL) { g.Flush() }, []any{}},
		{"FramebufferRenderbuffer", func(g gl.GL) {
			g.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, 4)
		}, []any{gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, uint32(4)}},
		{"FramebufferTexture2D", func(g gl.GL) {
			g.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, 7, 0)
		}, []any{gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(7), int32(0)}},
		{"FrontFace", func(g gl.GL) { g.FrontFace(gl.CCW) }, []any{gl.CCW}},
		{"GenBuffer", func(g gl.GL) { g.GenBuffer() }, []any{}},
		{"GenFramebuffer", func(g gl.GL) { g.GenFramebuffer() }, []any{}},
		{"GenRenderbuffer", func(g gl.GL) { g.GenRenderbuffer() }, []any{}},
		{"GenTexture", func(g gl.GL) { g.GenTexture() }, []any{}},
		{"GenerateMipmap", func(g gl.GL) { g.GenerateMipmap(gl.TEXTURE_2D) }, []any{gl.TEXTURE_2D}},
		{"GetAttribLocation", func(g gl.GL) { g.GetAttribLocation(1, "a_uv") }, []any{uint32(1), "a_uv"}},
		{"GetError", func(g gl.GL) { g.GetError() }, []any{}},
		{"GetProgramInfoLog", func(g gl.GL) { g.GetProgramInfoLog(1) }, []any{uint32(1)}},
		{"GetProgramiv", func(g gl.GL) { g.GetProgramiv(1, gl.LINK_STATUS) }, []any{uint32(1), gl.LINK_STATUS}},
		{"GetShaderInfoLog", func(g gl.GL) { g.GetShaderInfoLog(2) }, []any{uint32(2)}},
		{"GetShaderiv", func(g gl.GL) { g.GetShaderiv(2, gl.COMPILE_STATUS) }, []any{uint32(2), gl.COMPILE_STATUS}},
		{"GetUniformLocation", func(g gl.GL) { g.GetUniformLocation(1, "u_mvp") }, []any{uint32(1), "u_mvp"}},
		{"LineWidth", func(g gl.GL) { g.LineWidth(2) }, []any{float32(2)}},
		{"LinkProgram", func(g gl.GL) { g.LinkProgram(1) }, []any{uint32(1)}},
		{"PixelStorei", func(g gl.GL) { g.PixelStorei(gl.UNPACK_ALIGNMENT, 1) }, []any{gl.UNPACK_ALIGNMENT, int32(1)}},
		{"ReadPixels", func(g gl.GL) { g.ReadPixels(data, 0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE) }, []any{data, int32(0), int32(0), int32(1), int32(1), gl.RGBA, gl.UNSIGNED_BYTE}},
		{"RenderbufferStorage", func(g gl.GL) {
			g.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, 64, 64)
		}, []any{gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, int32(64), int32(64)}},
		{"Scissor", func(g gl.GL) { g.Scissor(0, 0, 320, 240) }, []any{int32(0), int32(0), int32(320), int32(240)}},
		{"ShaderSource", func(g gl.GL) { g.ShaderSource(2, "void main() {}") }, []any{uint32(2), "void main() {}"}},
		{"TexImage2D", func(g gl.GL) {
			g.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, data)
		}, []any{gl.TEXTURE_2D, int32(0), int32(gl.RGBA), int32(1), int32(1), gl.RGBA, gl.UNSIGNED_BYTE, data}},
		{"TexParameterf", func(g gl.GL) { g.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, 1) }, []any{gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, float32(1)}},
		{"TexParameteri", func(g gl.GL) {
			g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(gl.CLAMP_TO_EDGE))
		}, []any{gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(gl.CLAMP_TO_EDGE)}},
		{"TexSubImage2D", func(g gl.GL) {
			g.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, data)
		}, []any{gl.TEXTURE_2D, int32(0), int32(0), int32(0), int32(1), int32(1), gl.RGBA, gl.UNSIGNED_BYTE, data}},
		{"Uniform1f", func(g gl.GL) { g.Uniform1f(3, .5) }, []any{int32(3), float32(.5)}},
		{"Uniform1i", func(g gl.GL) { g.Uniform1i(3, 0) }, []any{int32(3), int32(0)}},
		{"Uniform2f", func(g gl.GL) { g.Uniform2f(3, 1, 2) }, []any{int32(3), float32(1), float32(2)}},
		{"Uniform3f", func(g gl.GL) { g.Uniform3f(3, 1, 2, 3) }, []any{int32(3), float32(1), float32(2), float32(3)}},
		{"Uniform4f", func(g gl.GL) { g.Uniform4f(3, 1, 2, 3, 4) }, []any{int32(3), float32(1), float32(2), float32(3), float32(4)}},
		{"UniformMatrix4fv", func(g gl.GL) { g.UniformMatrix4fv(4, false, matrix) }, []any{int32(4), false, matrix}},
		{"UseProgram", func(g gl.GL) { g.UseProgram(1) }, []any{uint32(1)}},
		{"ValidateProgram", func(g gl.GL) { g.ValidateProgram(1) }, []any{uint32(1)}},
		{"VertexAttribPointer", func(g gl.GL) {
			g.VertexAttribPointer(0, 2, gl.FLOAT, false, 16, 8)
		}, []any{uint32(0), int32(2), gl.FLOAT, false, int32(16), 8}},
		{"Viewport", func(g gl.GL) { g.Viewport(0, 0, 320, 240) }, []any{int32(0), int32(0), int32(320), int32(240)}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m := mock.New(mock.Config{Ledger: spytest.NewLedger(t)})
			tc.call(m)

			if got := m.Ledger().CallCount(); got != 1 {
				t.Fatalf("expected exactly one recorded call, got %d", got)
			}
			if err := m.Verify(tc.name, tc.args...); err != nil {
				t.Fatalf("verify failed: %v", err)
			}
			if err := m.Ledger().VerifyNoMoreCalls(); err != nil {
				t.Fatalf("unexpected extra calls: %v", err)
			}
		})
	}
}

func TestSlicesCopied(t *testing.T) {
	m := mock.New(mock.Config{})

	data := []byte{1, 2, 3}
	m.BufferData(gl.ARRAY_BUFFER, len(data), data, gl.STATIC_DRAW)
	data[0] = 9

	if err := m.Verify("BufferData", gl.ARRAY_BUFFER, 3, []byte{1, 2, 3}, gl.STATIC_DRAW); err != nil {
		t.Fatalf("expected data as passed at call time: %v", err)
	}

	t.Run("Nil stays null", func(t *testing.T) {
		m.BufferData(gl.ARRAY_BUFFER, 16, nil, gl.DYNAMIC_DRAW)
		if err := m.Verify("BufferData", gl.ARRAY_BUFFER, 16, match.Null(), gl.DYNAMIC_DRAW); err != nil {
			t.Fatalf("expected nil data to match null: %v", err)
		}
	})

	t.Run("Nil stays equal to nil", func(t *testing.T) {
		m.BufferData(gl.ARRAY_BUFFER, 16, nil, gl.DYNAMIC_DRAW)
		if err := m.Verify("BufferData", gl.ARRAY_BUFFER, 16, nil, gl.DYNAMIC_DRAW); err != nil {
			t.Fatalf("expected nil data to equal a nil literal: %v", err)
		}
	})
}

func TestResults(t *testing.T) {
	m := mock.New(mock.Config{})

	t.Run("Names are fresh", func(t *testing.T) {
		seen := map[uint32]bool{}
		for _, name := range []uint32{m.GenTexture(), m.GenBuffer(), m.CreateProgram(), m.CreateShader(gl.VERTEX_SHADER)} {
			if name == 0 || seen[name] {
				t.Fatalf("expected fresh non-zero names, got %d twice or zero", name)
			}
			seen[name] = true
		}
	})

	t.Run("Statuses report success", func(t *testing.T) {
		if got := m.GetShaderiv(1, gl.COMPILE_STATUS); got != int32(gl.TRUE) {
			t.Fatalf("expected compile success, got %d", got)
		}
		if got := m.GetProgramiv(1, gl.LINK_STATUS); got != int32(gl.TRUE) {
			t.Fatalf("expected link success, got %d", got)
		}
		if got := m.GetProgramiv(1, gl.INFO_LOG_LENGTH); got != 0 {
			t.Fatalf("expected empty info log, got %d", got)
		}
		if got := m.CheckFramebufferStatus(gl.FRAMEBUFFER); got != gl.FRAMEBUFFER_COMPLETE {
			t.Fatalf("expected complete framebuffer, got %#x", got)
		}
		if got := m.GetError(); got != gl.NO_ERROR {
			t.Fatalf("expected no error, got %#x", got)
		}
	})
}

// loadTexture is a small renderer routine used to drive the mock the way
// production code would.
func loadTexture(g gl.GL, pixels []byte, width, height int32) uint32 {
	tex := g.GenTexture()
	g.BindTexture(gl.TEXTURE_2D, tex)
	g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(gl.LINEAR))
	g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(gl.LINEAR))
	g.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), width, height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	g.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func TestRenderer(t *testing.T) {
	l := spytest.NewLedger(t)
	m := mock.New(mock.Config{Ledger: l})

	tex := loadTexture(m, make([]byte, 16), 2, 2)

	spytest.Require(t, l, "GenTexture")
	spytest.Require(t, l, "BindTexture", gl.TEXTURE_2D, tex)
	spytest.Require(t, l, "BindTexture", gl.TEXTURE_2D, uint32(0))
	spytest.Require(t, l, "TexParameteri", gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, match.AnyInt32())
	spytest.Require(t, l, "TexParameteri", gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(gl.LINEAR))
	spytest.Require(t, l, "TexImage2D", gl.TEXTURE_2D, int32(0), match.AnyInt32(), int32(2), int32(2),
		gl.RGBA, gl.UNSIGNED_BYTE, match.AnyBytes())
	spytest.NoMoreCalls(t, l)
	spytest.CallCount(t, l, 6)
}

func TestScenarios(t *testing.T) {
	t.Run("Texture bound once", func(t *testing.T) {
		m := mock.New(mock.Config{})
		m.BindTexture(gl.TEXTURE_2D, 7)

		if err := m.Verify("BindTexture", uint32(3553), uint32(7)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := m.Verify("BindTexture", uint32(3553), uint32(7)); !errors.Is(err, spy.ErrNotCalled) {
			t.Fatalf("expected %v, got %v", spy.ErrNotCalled, err)
		}
	})

	t.Run("Clear color with wildcards", func(t *testing.T) {
		m := mock.New(mock.Config{})
		m.ClearColor(1, 0, 0, 1)

		err := m.Verify("ClearColor", match.AnyFloat32(), match.AnyFloat32(), match.AnyFloat32(), match.AnyFloat32())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Buffers bound in order", func(t *testing.T) {
		m := mock.New(mock.Config{})
		m.BindBuffer(gl.ARRAY_BUFFER, 5)
		m.BindBuffer(gl.ARRAY_BUFFER, 9)

		if err := m.Verify("BindBuffer", uint32(34962), uint32(5)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := m.Verify("BindBuffer", uint32(34962), uint32(9)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Buffers bound out of order", func(t *testing.T) {
		m := mock.New(mock.Config{})
		m.BindBuffer(gl.ARRAY_BUFFER, 5)
		m.BindBuffer(gl.ARRAY_BUFFER, 9)

		err := m.Verify("BindBuffer", uint32(34962), uint32(9))
		var argErr *spy.ArgumentError
		if !errors.As(err, &argErr) || argErr.Index != 1 {
			t.Fatalf("expected argument mismatch at index 1, got %v", err)
		}
	})

	t.Run("Flush arity", func(t *testing.T) {
		m := mock.New(mock.Config{})
		m.Flush()
		m.Flush()

		if err := m.Verify("Flush"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := m.Verify("Flush", 1); !errors.Is(err, spy.ErrArityMismatch) {
			t.Fatalf("expected %v, got %v", spy.ErrArityMismatch, err)
		}
	})

	t.Run("Never called", func(t *testing.T) {
		m := mock.New(mock.Config{})
		if err := m.Verify("neverCalledMethod"); !errors.Is(err, spy.ErrNotCalled) {
			t.Fatalf("expected %v, got %v", spy.ErrNotCalled, err)
		}
	})
}

func TestSharedLedger(t *testing.T) {
	l := spy.New(spy.Config{})
	a := mock.New(mock.Config{Ledger: l})
	b := mock.New(mock.Config{Ledger: l})

	a.Flush()
	b.Flush()

	if got := l.Count("Flush"); got != 2 {
		t.Fatalf("expected both mocks to record into the shared ledger, got %d", got)
	}
	if a.Ledger() != b.Ledger() {
		t.Fatalf("expected the same ledger")
	}
}
