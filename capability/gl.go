package capability

// Slot identifies where a resolved entry point is stored in a Table.
type Slot uint16

// Entry point slots for the GL feature table.
const (
	SlotGenRenderbuffers Slot = iota
	SlotDeleteRenderbuffers
	SlotBindRenderbuffer
	SlotRenderbufferStorage
	SlotGenFramebuffers
	SlotBindFramebuffer
	SlotFramebufferTexture2D
	SlotFramebufferRenderbuffer
	SlotCheckFramebufferStatus
	SlotDeleteFramebuffers
	SlotGenerateMipmap
	SlotGetFramebufferAttachmentParameteriv

	SlotBlitFramebuffer
	SlotRenderbufferStorageMultisample

	SlotGenPrograms
	SlotDeletePrograms
	SlotBindProgram
	SlotProgramString
	SlotProgramLocalParameter4fv

	SlotCreateProgram
	SlotCreateShader
	SlotShaderSource
	SlotCompileShader
	SlotDeleteShader
	SlotAttachShader
	SlotLinkProgram
	SlotUseProgram
	SlotGetUniformLocation
	SlotDeleteProgram
	SlotGetShaderInfoLog
	SlotGetShaderiv
	SlotVertexAttribPointer
	SlotEnableVertexAttribArray
	SlotDisableVertexAttribArray
	SlotUniform1f
	SlotUniform2f
	SlotUniform3f
	SlotUniform4f
	SlotUniform1fv
	SlotUniform2fv
	SlotUniform3fv
	SlotUniform4fv
	SlotUniform1i
	SlotUniform2i
	SlotUniform3i
	SlotUniform4i
	SlotUniform1iv
	SlotUniform2iv
	SlotUniform3iv
	SlotUniform4iv
	SlotUniformMatrix2fv
	SlotUniformMatrix3fv
	SlotUniformMatrix4fv
	SlotGetProgramiv
	SlotGetProgramInfoLog

	SlotGenBuffers
	SlotBindBuffer
	SlotBufferData
	SlotBufferSubData
	SlotMapBuffer
	SlotUnmapBuffer
	SlotDeleteBuffers

	SlotDrawRangeElements
	SlotBlendEquation
	SlotBlendColor

	SlotTexImage3D
	SlotTexSubImage3D

	SlotActiveTexture
	SlotClientActiveTexture

	SlotBlendFuncSeparate
	SlotBlendEquationSeparate

	SlotEGLImageTargetTexture2D
	SlotEGLImageTargetRenderbufferStorage

	// NumSlots is the size of a Table's entry point array.
	NumSlots
)

// GLDescriptors returns the feature descriptors for desktop GL and GLES
// drivers. The slice is freshly allocated on each call.
func GLDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:     "offscreen",
			MinMajor: NoCoreVersion,
			MinMinor: NoCoreVersion,
			GLES:     APIGLES2,
			// The ARB variant of framebuffer_object has no function suffix.
			Namespaces:     []string{"ARB:", "EXT"},
			ExtensionNames: []string{"framebuffer_object"},
			Feature:        FeatureOffscreen,
			Functions: []Function{
				{"glGenRenderbuffers", SlotGenRenderbuffers},
				{"glDeleteRenderbuffers", SlotDeleteRenderbuffers},
				{"glBindRenderbuffer", SlotBindRenderbuffer},
				{"glRenderbufferStorage", SlotRenderbufferStorage},
				{"glGenFramebuffers", SlotGenFramebuffers},
				{"glBindFramebuffer", SlotBindFramebuffer},
				{"glFramebufferTexture2D", SlotFramebufferTexture2D},
				{"glFramebufferRenderbuffer", SlotFramebufferRenderbuffer},
				{"glCheckFramebufferStatus", SlotCheckFramebufferStatus},
				{"glDeleteFramebuffers", SlotDeleteFramebuffers},
				{"glGenerateMipmap", SlotGenerateMipmap},
				{"glGetFramebufferAttachmentParameteriv", SlotGetFramebufferAttachmentParameteriv},
			},
		},
		{
			Name:           "offscreen_blit",
			MinMajor:       NoCoreVersion,
			MinMinor:       NoCoreVersion,
			Namespaces:     []string{"EXT"},
			ExtensionNames: []string{"framebuffer_blit"},
			Feature:        FeatureOffscreenBlit,
			Functions:      []Function{{"glBlitFramebuffer", SlotBlitFramebuffer}},
		},
		{
			Name:           "offscreen_multisample",
			MinMajor:       NoCoreVersion,
			MinMinor:       NoCoreVersion,
			Namespaces:     []string{"EXT"},
			ExtensionNames: []string{"framebuffer_multisample"},
			Feature:        FeatureOffscreenMultisample,
			Functions:      []Function{{"glRenderbufferStorageMultisample", SlotRenderbufferStorageMultisample}},
		},
		{
			Name:           "read_pixels_async",
			MinMajor:       2,
			MinMinor:       1,
			Namespaces:     []string{"EXT"},
			ExtensionNames: []string{"pixel_buffer_object"},
			Feature:        FeaturePBOs,
		},
		{
			Name:           "arbfp",
			MinMajor:       NoCoreVersion,
			MinMinor:       NoCoreVersion,
			Namespaces:     []string{"ARB"},
			ExtensionNames: []string{"fragment_program"},
			Feature:        FeatureShadersARBFP,
			Functions: []Function{
				{"glGenPrograms", SlotGenPrograms},
				{"glDeletePrograms", SlotDeletePrograms},
				{"glBindProgram", SlotBindProgram},
				{"glProgramString", SlotProgramString},
				{"glProgramLocalParameter4fv", SlotProgramLocalParameter4fv},
			},
		},
		{
			// The GLSL entry points differ between the ARB extensions and
			// core, so only core 2.0 is accepted.
			Name:     "shaders_glsl",
			MinMajor: 2,
			MinMinor: 0,
			GLES:     APIGLES2,
			Feature:  FeatureShadersGLSL,
			Functions: []Function{
				{"glCreateProgram", SlotCreateProgram},
				{"glCreateShader", SlotCreateShader},
				{"glShaderSource", SlotShaderSource},
				{"glCompileShader", SlotCompileShader},
				{"glDeleteShader", SlotDeleteShader},
				{"glAttachShader", SlotAttachShader},
				{"glLinkProgram", SlotLinkProgram},
				{"glUseProgram", SlotUseProgram},
				{"glGetUniformLocation", SlotGetUniformLocation},
				{"glDeleteProgram", SlotDeleteProgram},
				{"glGetShaderInfoLog", SlotGetShaderInfoLog},
				{"glGetShaderiv", SlotGetShaderiv},
				{"glVertexAttribPointer", SlotVertexAttribPointer},
				{"glEnableVertexAttribArray", SlotEnableVertexAttribArray},
				{"glDisableVertexAttribArray", SlotDisableVertexAttribArray},
				{"glUniform1f", SlotUniform1f},
				{"glUniform2f", SlotUniform2f},
				{"glUniform3f", SlotUniform3f},
				{"glUniform4f", SlotUniform4f},
				{"glUniform1fv", SlotUniform1fv},
				{"glUniform2fv", SlotUniform2fv},
				{"glUniform3fv", SlotUniform3fv},
				{"glUniform4fv", SlotUniform4fv},
				{"glUniform1i", SlotUniform1i},
				{"glUniform2i", SlotUniform2i},
				{"glUniform3i", SlotUniform3i},
				{"glUniform4i", SlotUniform4i},
				{"glUniform1iv", SlotUniform1iv},
				{"glUniform2iv", SlotUniform2iv},
				{"glUniform3iv", SlotUniform3iv},
				{"glUniform4iv", SlotUniform4iv},
				{"glUniformMatrix2fv", SlotUniformMatrix2fv},
				{"glUniformMatrix3fv", SlotUniformMatrix3fv},
				{"glUniformMatrix4fv", SlotUniformMatrix4fv},
				{"glGetProgramiv", SlotGetProgramiv},
				{"glGetProgramInfoLog", SlotGetProgramInfoLog},
			},
		},
		{
			Name:           "vbos",
			MinMajor:       1,
			MinMinor:       5,
			GLES:           APIGLES1 | APIGLES2,
			Namespaces:     []string{"ARB"},
			ExtensionNames: []string{"vertex_buffer_object"},
			Feature:        FeatureVBOs | FeatureMapBufferForRead | FeatureMapBufferForWrite,
			Functions: []Function{
				{"glGenBuffers", SlotGenBuffers},
				{"glBindBuffer", SlotBindBuffer},
				{"glBufferData", SlotBufferData},
				{"glBufferSubData", SlotBufferSubData},
				{"glMapBuffer", SlotMapBuffer},
				{"glUnmapBuffer", SlotUnmapBuffer},
				{"glDeleteBuffers", SlotDeleteBuffers},
			},
		},
		{
			Name:           "texture_rectangle",
			MinMajor:       NoCoreVersion,
			MinMinor:       NoCoreVersion,
			Namespaces:     []string{"ARB"},
			ExtensionNames: []string{"texture_rectangle"},
			Feature:        FeatureTextureRectangle,
		},
		{
			Name:     "in_1_2",
			MinMajor: 1,
			MinMinor: 2,
			Functions: []Function{
				{"glDrawRangeElements", SlotDrawRangeElements},
				{"glBlendEquation", SlotBlendEquation},
				{"glBlendColor", SlotBlendColor},
			},
		},
		{
			Name:     "texture_3d",
			MinMajor: 1,
			MinMinor: 2,
			Feature:  FeatureTexture3D,
			Functions: []Function{
				{"glTexImage3D", SlotTexImage3D},
				{"glTexSubImage3D", SlotTexSubImage3D},
			},
		},
		{
			Name:           "multitexture",
			MinMajor:       1,
			MinMinor:       3,
			GLES:           APIGLES1 | APIGLES2,
			Namespaces:     []string{"ARB"},
			ExtensionNames: []string{"multitexture"},
			Functions: []Function{
				{"glActiveTexture", SlotActiveTexture},
				{"glClientActiveTexture", SlotClientActiveTexture},
			},
		},
		{
			Name:           "blend_func_separate",
			MinMajor:       1,
			MinMinor:       4,
			GLES:           APIGLES2,
			Namespaces:     []string{"EXT"},
			ExtensionNames: []string{"blend_func_separate"},
			Functions:      []Function{{"glBlendFuncSeparate", SlotBlendFuncSeparate}},
		},
		{
			Name:           "blend_equation_separate",
			MinMajor:       2,
			MinMinor:       0,
			GLES:           APIGLES2,
			Namespaces:     []string{"EXT"},
			ExtensionNames: []string{"blend_equation_separate"},
			Functions:      []Function{{"glBlendEquationSeparate", SlotBlendEquationSeparate}},
		},
		{
			Name:           "point_sprites",
			MinMajor:       2,
			MinMinor:       0,
			GLES:           APIGLES2,
			Namespaces:     []string{"ARB"},
			ExtensionNames: []string{"point_sprite"},
			Feature:        FeaturePointSprite,
		},
		{
			Name:           "EGL_image",
			MinMajor:       NoCoreVersion,
			MinMinor:       NoCoreVersion,
			Namespaces:     []string{"OES"},
			ExtensionNames: []string{"EGL_image"},
			PrivateFeature: PrivateFeatureTexture2DFromEGLImage,
			Functions: []Function{
				{"glEGLImageTargetTexture2D", SlotEGLImageTargetTexture2D},
				{"glEGLImageTargetRenderbufferStorage", SlotEGLImageTargetRenderbufferStorage},
			},
		},
	}
}
