// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/wsgibox/wsgibox/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	ProjectDir string
	Out        io.Writer
	Prompter   Prompter
	Build      BuildDeps
	Up         UpDeps
	Down       DownDeps
	Stop       StopDeps
	Logs       LogsDeps
	Prune      PruneDeps
	Export     ExportDeps
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Dir     string     `short:"C" help:"Project directory (default: current directory)"`
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	Init    InitCmd    `cmd:"" help:"Create a starter wsgibox.yml"`
	Render  RenderCmd  `cmd:"" help:"Render the Dockerfile for the current recipe"`
	Build   BuildCmd   `cmd:"" help:"Stage the build context and build the image"`
	Up      UpCmd      `cmd:"" help:"Start the application container"`
	Stop    StopCmd    `cmd:"" help:"Stop the application container (preserve it)"`
	Down    DownCmd    `cmd:"" help:"Stop and remove the application container"`
	Logs    LogsCmd    `cmd:"" help:"View container logs"`
	Prune   PruneCmd   `cmd:"" help:"Remove project containers and images"`
	Export  ExportCmd  `cmd:"" help:"Save the built image to a tar archive"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type (
	InitCmd struct {
		AppFile string `name:"app-file" short:"f" help:"Application file to record in wsgibox.yml"`
	}
	RenderCmd struct {
		AppFile string `name:"app-file" short:"f" help:"Override the application file for this render"`
		Output  string `short:"o" help:"Write the Dockerfile to a path instead of stdout"`
	}
	BuildCmd struct {
		AppFile string `name:"app-file" short:"f" help:"Override the application file for this build"`
		Tag     string `help:"Override the image tag"`
		NoCache bool   `name:"no-cache" help:"Do not use cache when building the image"`
		Verbose bool   `short:"v" help:"Enable verbose output"`
	}
	UpCmd struct {
		Build    bool `help:"Rebuild the image before starting"`
		HostPort int  `name:"publish" short:"p" help:"Host port to publish (default: container port)"`
	}
	StopCmd struct{}
	DownCmd struct{}
	LogsCmd struct {
		Follow     bool `short:"f" help:"Follow logs"`
		Tail       int  `help:"Tail the latest N lines"`
		Timestamps bool `help:"Show timestamps"`
	}
	PruneCmd struct {
		Yes bool `short:"y" help:"Skip confirmation prompt"`
		All bool `short:"a" help:"Remove all unused project images (not just dangling)"`
	}
	ExportCmd struct {
		Output   string `short:"o" help:"Archive output path (default: .wsgibox/<image>.tar)"`
		Bucket   string `help:"Upload the archive to this S3 bucket"`
		Key      string `help:"Object key for the upload (default: archive file name)"`
		Endpoint string `help:"S3-compatible endpoint (default: AWS resolution)"`
	}
)

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments, identifies the requested command, and dispatches
// to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	if len(args) == 0 {
		args = []string{"--help"}
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in the project dir.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"init":    runInit,
		"render":  runRender,
		"build":   runBuild,
		"up":      runUp,
		"stop":    runStop,
		"down":    runDown,
		"logs":    runLogs,
		"prune":   runPrune,
		"export":  runExport,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}
