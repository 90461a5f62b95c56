package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	defaultcommandadapter "github.com/chitacloud/pipefile/adapters/default-command-adapter"
	defaultpathresolver "github.com/chitacloud/pipefile/adapters/default-path-resolver"
	defaultpiperunner "github.com/chitacloud/pipefile/adapters/default-pipe-runner"
	"github.com/chitacloud/pipefile/internal/config"
	"github.com/chitacloud/pipefile/internal/logger"
	"github.com/chitacloud/pipefile/internal/pipeerrors"
	commandport "github.com/chitacloud/pipefile/ports/command-port"
	pipeentities "github.com/chitacloud/pipefile/ports/pipe/entities"
	pipeport "github.com/chitacloud/pipefile/ports/pipe-port"
)

// parseArgs validates and parses command line arguments
func parseArgs(args []string) (inv pipeentities.Invocation, err error) {
	if len(args) < 4 {
		err = pipeerrors.Usage(fmt.Sprintf("insufficient arguments: expected 3, got %d", max(len(args)-1, 0)))
		return
	}
	if len(args) > 4 {
		err = pipeerrors.Usage(fmt.Sprintf("unexpected extra arguments: expected 3, got %d (quote the command string)", len(args)-1))
		return
	}

	inv = pipeentities.Invocation{
		InputPath:  args[1],
		Command:    args[2],
		OutputPath: args[3],
	}
	if inv.InputPath == "" || inv.OutputPath == "" {
		err = pipeerrors.Usage("input and output paths cannot be empty")
	}
	return
}

// runPipe wires the default adapters and runs one invocation
func runPipe(inv pipeentities.Invocation, cfg *config.Config) (int, error) {
	commandFactory := &defaultcommandadapter.DefaultCommandAdapterFactory{
		Resolver: defaultpathresolver.NewDefaultPathResolver(),
	}
	runnerFactory := &defaultpiperunner.DefaultPipeRunnerFactory{}

	return runPipeWithFactories(inv, cfg, commandFactory, runnerFactory)
}

// runPipeWithFactories tokenizes the command, starts it behind a pipe runner
// and returns the exit status pipefile should terminate with.
func runPipeWithFactories(
	inv pipeentities.Invocation,
	cfg *config.Config,
	commandFactory commandport.CommandPortFactory,
	runnerFactory pipeport.PipeRunnerFactory,
) (int, error) {
	spec, err := pipeentities.ParseCommand(inv.Command)
	if err != nil {
		return pipeerrors.ExitStatus(err), err
	}

	commandPort, err := commandFactory.NewCommandPort(spec, pipeentities.RedirectionFor(inv, cfg.Source()))
	if err != nil {
		return pipeerrors.ExitStatus(err), err
	}

	runner, err := runnerFactory.NewPipeRunner(inv.InputPath, cfg.ChunkSize, commandPort)
	if err != nil {
		return pipeerrors.ExitStatus(err), err
	}
	defer runner.Close()

	return runner.Run()
}

func printUsage(w io.Writer, programName string, err error) {
	fmt.Fprintf(w, "Usage: %s <input_file> <command> <output_file>\n", programName)
	fmt.Fprintf(w, "Example: %s input.txt \"wc -l\" count.txt\n", programName)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// loaderOptions turns explicitly set flags into config overrides
func loaderOptions(cmd *cli.Command) []config.LoaderOption {
	var opts []config.LoaderOption
	if cmd.IsSet("config") {
		opts = append(opts, config.WithConfigFile(cmd.String("config")))
	}
	if cmd.IsSet("env-file") {
		opts = append(opts, config.WithEnvFile(cmd.String("env-file")))
	}
	if cmd.IsSet("chunk-size") {
		opts = append(opts, config.WithOverride("chunk_size", cmd.Int("chunk-size")))
	}
	if cmd.IsSet("stdin-source") {
		opts = append(opts, config.WithOverride("stdin_source", cmd.String("stdin-source")))
	}
	if cmd.IsSet("log-level") {
		opts = append(opts, config.WithOverride("log.level", cmd.String("log-level")))
	}
	return opts
}

// execute runs the root command's action and returns the exit status
func execute(cmd *cli.Command, programName string, stderr io.Writer) int {
	inv, err := parseArgs(append([]string{programName}, cmd.Args().Slice()...))
	if err != nil {
		printUsage(stderr, programName, err)
		return pipeerrors.ExitStatus(err)
	}

	cfg, err := config.Load(loaderOptions(cmd)...)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return pipeerrors.ExitStatus(err)
	}

	log := logger.Init(cfg.Log)
	defer log.Close()
	cliLog := log.WithComponent("cli")

	cliLog.Info("pipe run", logger.Fields(
		logger.FieldPath, inv.InputPath,
		logger.FieldCommand, inv.Command,
		"output", inv.OutputPath,
		"stdin_source", cfg.StdinSource,
		"chunk_size", cfg.ChunkSize,
	))

	status, err := runPipe(inv, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		cliLog.WithError(err).Debug("pipe run failed", logger.Fields(logger.FieldExitCode, status))
		return status
	}

	cliLog.Info("pipe run finished", logger.Fields(logger.FieldExitCode, status))
	return status
}

// run builds the CLI and returns the process exit status
func run(ctx context.Context, args []string, stderr io.Writer) int {
	programName := "pipefile"
	if len(args) > 0 {
		programName = args[0]
	}

	status := 0
	cmd := &cli.Command{
		Name:            "pipefile",
		Usage:           "Pipe a file through a command into another file",
		ArgsUsage:       "<input_file> <command> <output_file>",
		HideHelpCommand: true,
		Writer:          stderr,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file with PIPEFILE_* variables",
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "bytes streamed into the command per write",
			},
			&cli.StringFlag{
				Name:  "stdin-source",
				Usage: "what the command reads: pipe (streamed) or file (redirected)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or disabled",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			status = execute(cmd, programName, stderr)
			return nil
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return pipeerrors.FailureStatus
	}
	return status
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stderr))
}
