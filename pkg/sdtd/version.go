package sdtd

// Version is overridden at build time via -ldflags.
var Version = "develop"
