// Package driver provides a pluggable abstraction over the graphics driver
// that pipeline contexts probe at setup.
//
// # Driver Registration
//
// Drivers are registered by name, usually from init() functions, and
// selected at runtime. The null driver is always registered:
//
//	driver.Register("gl", func() driver.Driver { return newGLDriver() })
//
// # Driver Selection
//
// Use Default() to get the best available driver, or Get() to request a
// specific one by name:
//
//	d := driver.Default()       // gl, then gles2, then gles1, then anything
//	d := driver.Get("null")     // a specific driver
//
// # Testing
//
// [Static] is a driver described entirely by values. It stands in for a
// live driver in tests and in the probe command:
//
//	d := &driver.Static{
//	    DriverName:      "fake",
//	    DriverAPI:       capability.APIGL,
//	    Major:           1,
//	    Minor:           4,
//	    ExtensionString: "GL_EXT_framebuffer_object",
//	    Missing:         []string{"glBlitFramebufferEXT"},
//	}
package driver
