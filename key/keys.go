// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Demonstration Harness - these keys parameterize the built-in stack demonstration.
const (
	DemoElementWidth    = "demo.element_width"
	DemoShowAllocations = "demo.show_allocations"
)

// Playground - these keys configure the interactive stack playground.
const (
	PlayMaxElements = "play.max_elements"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Command Line Interface - these keys control the CLI presentation layer.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Diagnostics - these keys govern the persistent logging subsystem.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
