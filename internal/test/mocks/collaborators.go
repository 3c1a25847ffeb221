package mocks

import (
	"context"

	"github.com/publab/publication-service/internal/service"
)

type FetchFunc func(ctx context.Context, sourceURL, tempLocation string) error

type Retriever struct {
	FetchFunc
}

func NewMockRetriever() *Retriever {
	return &Retriever{}
}

func (r *Retriever) WithFetchFunc(f FetchFunc) *Retriever {
	r.FetchFunc = f
	return r
}

func (r *Retriever) Fetch(ctx context.Context, sourceURL, tempLocation string) error {
	if r.FetchFunc == nil {
		panic("mock Fetch function not set")
	}
	return r.FetchFunc(ctx, sourceURL, tempLocation)
}

type ValidateFunc func(ctx context.Context, httpLocation string) (service.ValidationReport, error)

type Validator struct {
	ValidateFunc
}

func NewMockValidator() *Validator {
	return &Validator{}
}

func (v *Validator) WithValidateFunc(f ValidateFunc) *Validator {
	v.ValidateFunc = f
	return v
}

func (v *Validator) Validate(ctx context.Context, httpLocation string) (service.ValidationReport, error) {
	if v.ValidateFunc == nil {
		panic("mock Validate function not set")
	}
	return v.ValidateFunc(ctx, httpLocation)
}

type CheckTokenFunc func(ctx context.Context, versionURL, token string) (service.TokenDecision, error)

type TokenChecker struct {
	CheckTokenFunc
}

func NewMockTokenChecker() *TokenChecker {
	return &TokenChecker{}
}

func (c *TokenChecker) WithCheckTokenFunc(f CheckTokenFunc) *TokenChecker {
	c.CheckTokenFunc = f
	return c
}

func (c *TokenChecker) Check(ctx context.Context, versionURL, token string) (service.TokenDecision, error) {
	if c.CheckTokenFunc == nil {
		panic("mock token Check function not set")
	}
	return c.CheckTokenFunc(ctx, versionURL, token)
}

type CheckResourcesFunc func(ctx context.Context, httpLocation string) ([]service.Violation, error)

type ResourceChecker struct {
	CheckResourcesFunc
}

func NewMockResourceChecker() *ResourceChecker {
	return &ResourceChecker{}
}

func (c *ResourceChecker) WithCheckResourcesFunc(f CheckResourcesFunc) *ResourceChecker {
	c.CheckResourcesFunc = f
	return c
}

func (c *ResourceChecker) Check(ctx context.Context, httpLocation string) ([]service.Violation, error) {
	if c.CheckResourcesFunc == nil {
		panic("mock resource Check function not set")
	}
	return c.CheckResourcesFunc(ctx, httpLocation)
}

type PublishFunc func(ctx context.Context, metadata map[string]string) ([]service.PublishError, error)

type Publisher struct {
	PublishFunc
}

func NewMockPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) WithPublishFunc(f PublishFunc) *Publisher {
	p.PublishFunc = f
	return p
}

func (p *Publisher) Publish(ctx context.Context, metadata map[string]string) ([]service.PublishError, error) {
	if p.PublishFunc == nil {
		panic("mock Publish function not set")
	}
	return p.PublishFunc(ctx, metadata)
}

type InstallDocumentFunc func(ctx context.Context, source, dest string) error
type UpdateShortlinkFunc func(ctx context.Context, uri string) error

type Executor struct {
	InstallDocumentFunc
	UpdateShortlinkFunc
}

func NewMockExecutor() *Executor {
	return &Executor{}
}

func (e *Executor) WithInstallDocumentFunc(f InstallDocumentFunc) *Executor {
	e.InstallDocumentFunc = f
	return e
}

func (e *Executor) WithUpdateShortlinkFunc(f UpdateShortlinkFunc) *Executor {
	e.UpdateShortlinkFunc = f
	return e
}

func (e *Executor) InstallDocument(ctx context.Context, source, dest string) error {
	if e.InstallDocumentFunc == nil {
		panic("mock InstallDocument function not set")
	}
	return e.InstallDocumentFunc(ctx, source, dest)
}

func (e *Executor) UpdateShortlink(ctx context.Context, uri string) error {
	if e.UpdateShortlinkFunc == nil {
		panic("mock UpdateShortlink function not set")
	}
	return e.UpdateShortlinkFunc(ctx, uri)
}
