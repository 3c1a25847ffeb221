package container

import (
	"fmt"
	"log/slog"

	"github.com/publab/publication-service/internal/command"
	"github.com/publab/publication-service/internal/service"
	"github.com/publab/publication-service/internal/shared/config"
	"github.com/publab/publication-service/internal/shared/logging"
	"github.com/publab/publication-service/internal/workflow"
)

// DependencyContainer hands out the collaborator adapters the workflow
// needs. Accessors construct lazily so a partially exercised run only builds
// what it touches.
type DependencyContainer interface {
	Retriever() service.Retriever
	Validator() service.Validator
	TokenChecker() service.TokenChecker
	ResourceChecker() service.ResourceChecker
	Publisher() service.Publisher
	Executor() (command.Executor, error)
	Logger() *slog.Logger
	SetLogger(logger *slog.Logger)
}

type Container struct {
	Config          config.Config
	retriever       *service.HTTPRetriever
	validator       *service.HTTPValidator
	tokenChecker    *service.HTTPTokenChecker
	resourceChecker *service.HTTPResourceChecker
	publisher       *service.HTTPPublisher
	executor        *command.OSExecutor
	logger          *slog.Logger
}

func NewContainer() (*Container, error) {
	containerConfig, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewContainerFromConfig(containerConfig), nil
}

func NewContainerFromConfig(config config.Config) *Container {
	return &Container{Config: config}
}

func (c *Container) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

func (c *Container) Logger() *slog.Logger {
	if c.logger == nil {
		c.logger = logging.Default.With(slog.String("warning", "should set logger with context"))
	}
	return c.logger
}

func (c *Container) Retriever() service.Retriever {
	if c.retriever == nil {
		c.retriever = service.NewHTTPRetriever(c.Logger())
	}
	return c.retriever
}

func (c *Container) Validator() service.Validator {
	if c.validator == nil {
		c.validator = service.NewHTTPValidator(c.Config.Checkers.ValidatorURL, c.Logger())
	}
	return c.validator
}

func (c *Container) TokenChecker() service.TokenChecker {
	if c.tokenChecker == nil {
		c.tokenChecker = service.NewHTTPTokenChecker(c.Config.Checkers.TokenServiceURL, c.Logger())
	}
	return c.tokenChecker
}

func (c *Container) ResourceChecker() service.ResourceChecker {
	if c.resourceChecker == nil {
		c.resourceChecker = service.NewHTTPResourceChecker(c.Config.Checkers.ResourceCheckerURL, c.Logger())
	}
	return c.resourceChecker
}

func (c *Container) Publisher() service.Publisher {
	if c.publisher == nil {
		publisherConfig := c.Config.Publisher
		c.publisher = service.NewHTTPPublisher(
			publisherConfig.BaseURL,
			publisherConfig.Username,
			publisherConfig.Password,
			c.Logger())
	}
	return c.publisher
}

func (c *Container) Executor() (command.Executor, error) {
	if c.executor == nil {
		commandConfig := c.Config.Commands
		executor, err := command.NewOSExecutor(
			commandConfig.InstallTemplate,
			commandConfig.ShortlinkTemplate,
			c.Logger())
		if err != nil {
			return nil, fmt.Errorf("error building command executor: %w", err)
		}
		c.executor = executor
	}
	return c.executor, nil
}

// Collaborators bundles the container's adapters for the workflow
// dispatcher.
func (c *Container) Collaborators() (workflow.Collaborators, error) {
	executor, err := c.Executor()
	if err != nil {
		return workflow.Collaborators{}, err
	}
	return workflow.Collaborators{
		Retriever:       c.Retriever(),
		Validator:       c.Validator(),
		TokenChecker:    c.TokenChecker(),
		ResourceChecker: c.ResourceChecker(),
		Publisher:       c.Publisher(),
		Executor:        executor,
	}, nil
}
