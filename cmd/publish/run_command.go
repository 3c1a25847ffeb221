package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/publab/publication-service/internal/container"
	"github.com/publab/publication-service/internal/publication"
	"github.com/publab/publication-service/internal/shared/config"
	"github.com/publab/publication-service/internal/shared/logging"
	"github.com/publab/publication-service/internal/workflow"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	var sourceURL string
	var authToken string
	var tempLocation string
	var httpLocation string
	var resultLocation string
	var configPath string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the publication workflow for one document",
		RunE: func(cmd *cobra.Command, args []string) error {
			runConfig, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger := logging.Default.With(
				slog.String("runId", runID),
				slog.String("sourceUrl", sourceURL))

			depContainer := container.NewContainerFromConfig(runConfig)
			depContainer.SetLogger(logger)
			collaborators, err := depContainer.Collaborators()
			if err != nil {
				return err
			}

			dispatcher := workflow.NewDispatcher(collaborators, workflow.NewRunner(logger))
			start := publication.NewState(publication.Request{
				SourceURL:      sourceURL,
				AuthToken:      authToken,
				TempLocation:   tempLocation,
				HTTPLocation:   httpLocation,
				ResultLocation: resultLocation,
			})

			final := workflow.Run(cmd.Context(), dispatcher, logProgress(logger), start)

			for _, entry := range final.History() {
				cmd.Println(entry)
			}
			cmd.Printf("status: %s\n", final.Status())
			if final.Status() != publication.SuccessStatus {
				return fmt.Errorf("%w: %s", ErrPublicationFailed, final.Status())
			}
			return nil
		},
	}

	runCmd.Flags().StringVar(&sourceURL, "source", "", "URL of the document to publish")
	runCmd.Flags().StringVar(&authToken, "token", "", "Publication token for the document")
	runCmd.Flags().StringVar(&tempLocation, "temp-dir", "", "Temporary directory the document is retrieved into")
	runCmd.Flags().StringVar(&httpLocation, "http-location", "", "Public URL the retrieved document is served from during checks")
	runCmd.Flags().StringVar(&resultLocation, "result-location", "", "Directory published documents are installed under")
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	for _, required := range []string{"source", "token", "temp-dir", "http-location", "result-location"} {
		cobra.CheckErr(runCmd.MarkFlagRequired(required))
	}

	return runCmd
}

// loadConfig reads the optional TOML file, then fills anything it left unset
// from the environment.
func loadConfig(configPath string) (config.Config, error) {
	fileConfig := config.Config{}
	if configPath != "" {
		parsed, err := config.ReadFile(configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileConfig = parsed
	}
	return fileConfig.Load()
}

// logProgress reports every workflow notification through the run logger.
func logProgress(logger *slog.Logger) workflow.ProgressHandler {
	return func(state publication.State) {
		history := state.History()
		attrs := []any{
			slog.String("overallStatus", string(state.Status())),
			slog.Int("steps", len(state.Jobs())),
		}
		if len(history) > 0 {
			attrs = append(attrs, slog.String("latest", history[len(history)-1]))
		}
		logger.Info("workflow progress", attrs...)
	}
}
