package document

import "context"

type Repository interface {
	Create(ctx context.Context, v *Version) error
	// ListByProgramID returns rows in insertion order (ascending id), which
	// is what read-time version numbering is computed from.
	ListByProgramID(ctx context.Context, programID string) ([]Version, error)
	ExistsByStoredName(ctx context.Context, programID, storedName string) (bool, error)
}
