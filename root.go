package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsukinoko-kun/listkit/internal/config"
	"github.com/tsukinoko-kun/listkit/internal/docker"
	"github.com/tsukinoko-kun/listkit/internal/logger"
	"github.com/tsukinoko-kun/listkit/internal/models"
	"github.com/tsukinoko-kun/listkit/internal/ui"
)

type rootFlags struct {
	configPath   string
	source       string
	treeFile     string
	dockerHost   string
	logLevel     string
	nestingDepth float32
	verbose      bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithFlags(&rootFlags{})
}

func newRootCmdWithFlags(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "listkit",
		Short:         "Showcase for the listkit list item widget",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			return runShowcase(cmd.Context(), settings)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Settings file (default: user config dir)")
	cmd.Flags().StringVar(&flags.source, "source", "", "Tree source: demo, file or docker")
	cmd.Flags().StringVar(&flags.treeFile, "tree", "", "YAML list tree for the file source")
	cmd.Flags().StringVar(&flags.dockerHost, "docker-host", "", "Docker daemon address")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().Float32Var(&flags.nestingDepth, "nesting-depth", 0, "Indent of nested items in dp")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSettings reads the settings file and applies the flags that were set.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (*config.Settings, error) {
	path := flags.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locate settings: %w", err)
		}
		path = p
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.treeFile != "" {
		settings.TreeFile = flags.treeFile
		if !cmd.Flags().Changed("source") {
			settings.Source = models.SourceFile
		}
	}
	if cmd.Flags().Changed("source") {
		settings.Source = models.Source(flags.source)
	}
	if cmd.Flags().Changed("docker-host") {
		settings.DockerHost = flags.dockerHost
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("nesting-depth") {
		settings.NestingDepth = flags.nestingDepth
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func runShowcase(ctx context.Context, settings *config.Settings) error {
	log, err := logger.New(logger.Options{Level: settings.LogLevel, HumanReadable: true})
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	log.WithFields(map[string]any{"source": string(settings.Source), "settings": settings.Path()}).Debug("starting")

	dockerClient := connectDocker(ctx, settings, log)
	if dockerClient == nil && settings.Source == models.SourceDocker {
		return fmt.Errorf("docker is not reachable; make sure it is running and accessible")
	}
	if dockerClient != nil {
		defer dockerClient.Close()
	}

	return ui.NewApp(settings, log, dockerClient).Run()
}

// connectDocker returns a client when the daemon answers, nil otherwise.
func connectDocker(ctx context.Context, settings *config.Settings, log *logger.Logger) *docker.Client {
	log = log.With("source", string(models.SourceDocker))

	client, err := docker.NewClient(settings.DockerHost)
	if err != nil {
		log.Error(err, "failed to create docker client")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.Warn("docker daemon unavailable, container source disabled")
		_ = client.Close()
		return nil
	}
	return client
}
