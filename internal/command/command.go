package command

import "context"

// Executor abstracts the OS-level publication commands so the workflow can be
// exercised without spawning processes.
type Executor interface {
	// InstallDocument moves the retrieved document tree from source into its
	// permanent destination.
	InstallDocument(ctx context.Context, source, dest string) error
	// UpdateShortlink points the undated shortlink at the version named by uri.
	UpdateShortlink(ctx context.Context, uri string) error
}
