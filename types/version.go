package types

// Version is the canonical project version, shared by the CLI and the
// render core.
const Version = "0.3.0"
