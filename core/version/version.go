package version

// Version is the current restmap release.
const Version = "0.1.0"
