// Where: internal/meta/meta.go
// What: Tool-wide metadata constants.
// Why: Keep naming and default values in one place.
package meta

const (
	// Project Identity
	AppName     = "wsgibox"
	EnvPrefix   = "WSGIBOX"
	LabelPrefix = "com.wsgibox"

	// Directory Layout
	ConfigFileName = "wsgibox.yml"
	OutputDir      = ".wsgibox"
	ContextDirName = "context"
	StateFileName  = "state.yml"

	// Recipe Defaults
	DefaultBaseImage    = "python:3.12-slim"
	DefaultAppFile      = "app.py"
	DefaultRequirements = "requirements.txt"
	DefaultPort         = 8080
	DefaultWorkers      = 1
	DefaultThreads      = 8
	DefaultTag          = "latest"

	// The WSGI callable every staged application file must expose.
	AppObject = "app"

	// PortEnvVar is read by the launch command inside the container.
	PortEnvVar = "PORT"
)
