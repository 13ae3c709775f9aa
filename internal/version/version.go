// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Chinese lunisolar calendar readout, headless -report mode
// 0.2.0 - Isolated phase view panel, clickable sun, guide/label toggles
// 0.1.0 - Initial release: animated orrery, clock controls, date entry
