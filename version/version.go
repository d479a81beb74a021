package version

// Version is overridden at build time with -ldflags.
var Version = "development"
