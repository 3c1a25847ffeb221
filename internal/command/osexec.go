package command

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"text/template"
)

// RunShell executes a rendered command line through the shell and returns its
// combined output. It is a variable so tests can substitute a recorder.
type RunShell func(ctx context.Context, commandLine string) ([]byte, error)

func defaultRunShell(ctx context.Context, commandLine string) ([]byte, error) {
	return exec.CommandContext(ctx, "/bin/sh", "-c", commandLine).CombinedOutput()
}

// OSExecutor renders the configured command templates and runs them through
// the shell. Template fields: {{.Source}} and {{.Dest}} for install,
// {{.URI}} for the shortlink update.
type OSExecutor struct {
	installTemplate   *template.Template
	shortlinkTemplate *template.Template
	run               RunShell
	logger            *slog.Logger
}

func NewOSExecutor(installTemplate, shortlinkTemplate string, logger *slog.Logger) (*OSExecutor, error) {
	install, err := template.New("install").Parse(installTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing install command template: %w", err)
	}
	shortlink, err := template.New("shortlink").Parse(shortlinkTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing shortlink command template: %w", err)
	}
	return &OSExecutor{
		installTemplate:   install,
		shortlinkTemplate: shortlink,
		run:               defaultRunShell,
		logger:            logger,
	}, nil
}

// WithRunShell replaces the shell runner. Intended for tests.
func (e *OSExecutor) WithRunShell(run RunShell) *OSExecutor {
	e.run = run
	return e
}

type installParams struct {
	Source string
	Dest   string
}

type shortlinkParams struct {
	URI string
}

func (e *OSExecutor) InstallDocument(ctx context.Context, source, dest string) error {
	return e.execute(ctx, e.installTemplate, installParams{Source: source, Dest: dest})
}

func (e *OSExecutor) UpdateShortlink(ctx context.Context, uri string) error {
	return e.execute(ctx, e.shortlinkTemplate, shortlinkParams{URI: uri})
}

func (e *OSExecutor) execute(ctx context.Context, commandTemplate *template.Template, params any) error {
	var rendered strings.Builder
	if err := commandTemplate.Execute(&rendered, params); err != nil {
		return fmt.Errorf("error rendering %s command: %w", commandTemplate.Name(), err)
	}
	commandLine := rendered.String()
	output, err := e.run(ctx, commandLine)
	if err != nil {
		return fmt.Errorf("%s command %q failed: %w; output: %s",
			commandTemplate.Name(), commandLine, err, strings.TrimSpace(string(output)))
	}
	e.logger.Info("command succeeded",
		slog.String("name", commandTemplate.Name()),
		slog.String("command", commandLine))
	return nil
}
