// internal/version/version.go
package version

// Version is the released tool version.
const Version = "0.1.0"
