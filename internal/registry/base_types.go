package registry

// DefaultBaseTypes are the GLAD primitive and opaque types. They are never
// treated as loader function pointer types.
var DefaultBaseTypes = []string{
	"GLADloadproc",
	"khronos_int8_t",
	"khronos_uint8_t",
	"khronos_int16_t",
	"khronos_uint16_t",
	"khronos_int32_t",
	"khronos_float_t",
	"khronos_intptr_t",
	"khronos_ssize_t",
	"khronos_int64_t",
	"khronos_uint64_t",
	"GLenum",
	"GLboolean",
	"GLbitfield",
	"GLvoid",
	"GLbyte",
	"GLubyte",
	"GLshort",
	"GLushort",
	"GLint",
	"GLuint",
	"GLclampx",
	"GLsizei",
	"GLfloat",
	"GLclampf",
	"GLdouble",
	"GLclampd",
	"GLeglClientBufferEXT",
	"GLeglImageOES",
	"GLchar",
	"GLcharARB",
	"GLhandleARB",
	"GLhalf",
	"GLhalfARB",
	"GLfixed",
	"GLintptr",
	"GLintptrARB",
	"GLsizeiptr",
	"GLsizeiptrARB",
	"GLint64",
	"GLint64EXT",
	"GLuint64",
	"GLuint64EXT",
	"GLsync",
	"_cl_context",
	"_cl_event",
	"GLDEBUGPROC",
	"GLDEBUGPROCARB",
	"GLDEBUGPROCKHR",
	"GLDEBUGPROCAMD",
	"GLhalfNV",
	"GLvdpauSurfaceNV",
	"GLVULKANPROCNV",
}

// DefaultPointerTypePattern matches the names of loader function pointer
// typedefs.
const DefaultPointerTypePattern = "^PFN"
