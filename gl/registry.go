package gl

// Builtin alias data for the commands the core and its typed wrappers
// consume, sourced from the Khronos registry's promotion and alias
// declarations. Regenerate with tools/gen_registry when extending the
// table.

func core(symbol string, major, minor uint64) Candidate {
	return Candidate{Symbol: symbol, Requires: CoreSince(major, minor)}
}

func ext(symbol, token string) Candidate {
	return Candidate{Symbol: symbol, Requires: Extension(token)}
}

func always(symbol string) Candidate {
	return Candidate{Symbol: symbol}
}

// DefaultRegistry builds a fresh registry holding the builtin alias table.
// Each call returns an independent instance so callers (and tests) can
// extend one without affecting others.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, cmd := range builtinCommands() {
		if err := r.Register(cmd); err != nil {
			panic("gl: invalid builtin command table: " + err.Error())
		}
	}
	return r
}

func builtinCommands() []Command {
	return []Command{
		// Baseline 1.0/1.1 entry points every driver exports.
		{Name: "GetString", Candidates: []Candidate{always("glGetString")}},
		{Name: "GetError", Candidates: []Candidate{always("glGetError")}},
		{Name: "GetIntegerv", Candidates: []Candidate{always("glGetIntegerv")}},
		{Name: "Clear", Candidates: []Candidate{always("glClear")}},
		{Name: "ClearColor", Candidates: []Candidate{always("glClearColor")}},
		{Name: "Viewport", Candidates: []Candidate{always("glViewport")}},
		{Name: "Enable", Candidates: []Candidate{always("glEnable")}},
		{Name: "Disable", Candidates: []Candidate{always("glDisable")}},
		{Name: "DrawArrays", Candidates: []Candidate{always("glDrawArrays")}},
		{Name: "DrawElements", Candidates: []Candidate{always("glDrawElements")}},
		{Name: "Finish", Candidates: []Candidate{always("glFinish")}},
		{Name: "Flush", Candidates: []Candidate{always("glFlush")}},

		// 1.2 promotions.
		{Name: "TexImage3D", Candidates: []Candidate{
			core("glTexImage3D", 1, 2),
			ext("glTexImage3DEXT", "GL_EXT_texture3D"),
		}},
		{Name: "DrawRangeElements", Candidates: []Candidate{
			core("glDrawRangeElements", 1, 2),
			ext("glDrawRangeElementsEXT", "GL_EXT_draw_range_elements"),
		}},

		// 1.3 promotions.
		{Name: "ActiveTexture", Candidates: []Candidate{
			core("glActiveTexture", 1, 3),
			ext("glActiveTextureARB", "GL_ARB_multitexture"),
		}},
		{Name: "ClientActiveTexture", Candidates: []Candidate{
			core("glClientActiveTexture", 1, 3),
			ext("glClientActiveTextureARB", "GL_ARB_multitexture"),
		}},
		{Name: "CompressedTexImage2D", Candidates: []Candidate{
			core("glCompressedTexImage2D", 1, 3),
			ext("glCompressedTexImage2DARB", "GL_ARB_texture_compression"),
		}},

		// 1.4 promotions.
		{Name: "BlendFuncSeparate", Candidates: []Candidate{
			core("glBlendFuncSeparate", 1, 4),
			ext("glBlendFuncSeparateEXT", "GL_EXT_blend_func_separate"),
			ext("glBlendFuncSeparateINGR", "GL_INGR_blend_func_separate"),
		}},
		{Name: "PointParameterf", Candidates: []Candidate{
			core("glPointParameterf", 1, 4),
			ext("glPointParameterfARB", "GL_ARB_point_parameters"),
			ext("glPointParameterfEXT", "GL_EXT_point_parameters"),
			ext("glPointParameterfSGIS", "GL_SGIS_point_parameters"),
		}},

		// 1.5: buffer objects and occlusion queries.
		{Name: "BindBuffer", Candidates: []Candidate{
			core("glBindBuffer", 1, 5),
			ext("glBindBufferARB", "GL_ARB_vertex_buffer_object"),
		}},
		{Name: "GenBuffers", Candidates: []Candidate{
			core("glGenBuffers", 1, 5),
			ext("glGenBuffersARB", "GL_ARB_vertex_buffer_object"),
		}},
		{Name: "DeleteBuffers", Candidates: []Candidate{
			core("glDeleteBuffers", 1, 5),
			ext("glDeleteBuffersARB", "GL_ARB_vertex_buffer_object"),
		}},
		{Name: "BufferData", Candidates: []Candidate{
			core("glBufferData", 1, 5),
			ext("glBufferDataARB", "GL_ARB_vertex_buffer_object"),
		}},
		{Name: "BufferSubData", Candidates: []Candidate{
			core("glBufferSubData", 1, 5),
			ext("glBufferSubDataARB", "GL_ARB_vertex_buffer_object"),
		}},
		{Name: "GenQueries", Candidates: []Candidate{
			core("glGenQueries", 1, 5),
			ext("glGenQueriesARB", "GL_ARB_occlusion_query"),
		}},
		{Name: "BeginQuery", Candidates: []Candidate{
			core("glBeginQuery", 1, 5),
			ext("glBeginQueryARB", "GL_ARB_occlusion_query"),
		}},
		{Name: "EndQuery", Candidates: []Candidate{
			core("glEndQuery", 1, 5),
			ext("glEndQueryARB", "GL_ARB_occlusion_query"),
		}},

		// 2.0: the programmable pipeline.
		{Name: "CreateShader", Candidates: []Candidate{
			core("glCreateShader", 2, 0),
			ext("glCreateShaderObjectARB", "GL_ARB_shader_objects"),
		}},
		{Name: "CompileShader", Candidates: []Candidate{
			core("glCompileShader", 2, 0),
			ext("glCompileShaderARB", "GL_ARB_shader_objects"),
		}},
		{Name: "UseProgram", Candidates: []Candidate{
			core("glUseProgram", 2, 0),
			ext("glUseProgramObjectARB", "GL_ARB_shader_objects"),
		}},
		{Name: "VertexAttribPointer", Candidates: []Candidate{
			core("glVertexAttribPointer", 2, 0),
			ext("glVertexAttribPointerARB", "GL_ARB_vertex_program"),
		}},
		{Name: "EnableVertexAttribArray", Candidates: []Candidate{
			core("glEnableVertexAttribArray", 2, 0),
			ext("glEnableVertexAttribArrayARB", "GL_ARB_vertex_program"),
		}},

		// 3.0: framebuffer objects, VAOs, indexed queries.
		{Name: "GetStringi", Candidates: []Candidate{core("glGetStringi", 3, 0)}},
		{Name: "GenFramebuffers", Candidates: []Candidate{
			core("glGenFramebuffers", 3, 0),
			ext("glGenFramebuffersEXT", "GL_EXT_framebuffer_object"),
		}},
		{Name: "BindFramebuffer", Candidates: []Candidate{
			core("glBindFramebuffer", 3, 0),
			ext("glBindFramebufferEXT", "GL_EXT_framebuffer_object"),
		}},
		{Name: "CheckFramebufferStatus", Candidates: []Candidate{
			core("glCheckFramebufferStatus", 3, 0),
			ext("glCheckFramebufferStatusEXT", "GL_EXT_framebuffer_object"),
		}},
		{Name: "GenerateMipmap", Candidates: []Candidate{
			core("glGenerateMipmap", 3, 0),
			ext("glGenerateMipmapEXT", "GL_EXT_framebuffer_object"),
		}},
		{Name: "BlitFramebuffer", Candidates: []Candidate{
			core("glBlitFramebuffer", 3, 0),
			ext("glBlitFramebufferEXT", "GL_EXT_framebuffer_blit"),
		}},
		{Name: "MapBufferRange", Candidates: []Candidate{
			core("glMapBufferRange", 3, 0),
			ext("glMapBufferRangeEXT", "GL_EXT_map_buffer_range"),
		}},
		{Name: "GenVertexArrays", Candidates: []Candidate{
			core("glGenVertexArrays", 3, 0),
			ext("glGenVertexArraysAPPLE", "GL_APPLE_vertex_array_object"),
		}},
		{Name: "BindVertexArray", Candidates: []Candidate{
			core("glBindVertexArray", 3, 0),
			ext("glBindVertexArrayAPPLE", "GL_APPLE_vertex_array_object"),
		}},

		// 3.1 instancing.
		{Name: "DrawArraysInstanced", Candidates: []Candidate{
			core("glDrawArraysInstanced", 3, 1),
			ext("glDrawArraysInstancedARB", "GL_ARB_draw_instanced"),
			ext("glDrawArraysInstancedEXT", "GL_EXT_draw_instanced"),
		}},
		{Name: "DrawElementsInstanced", Candidates: []Candidate{
			core("glDrawElementsInstanced", 3, 1),
			ext("glDrawElementsInstancedARB", "GL_ARB_draw_instanced"),
			ext("glDrawElementsInstancedEXT", "GL_EXT_draw_instanced"),
		}},

		// 4.3+ debug output.
		{Name: "DebugMessageCallback", Candidates: []Candidate{
			core("glDebugMessageCallback", 4, 3),
			ext("glDebugMessageCallbackKHR", "GL_KHR_debug"),
			ext("glDebugMessageCallbackARB", "GL_ARB_debug_output"),
		}},
		{Name: "ClipControl", Candidates: []Candidate{
			core("glClipControl", 4, 5),
			ext("glClipControlEXT", "GL_EXT_clip_control"),
		}},
	}
}
