package domain

// MuscleGroup is static reference data describing a body area.
type MuscleGroup struct {
	ID          int64
	Name        string
	Description *string
}

// Exercise is static reference data describing a single movement.
// Read-only during logging.
type Exercise struct {
	ID            int64
	MuscleGroupID int64
	Name          string
	Description   *string
	Steps         *string
	VideoURL      *string

	// MuscleGroup is populated by queries that join the reference table.
	MuscleGroup *MuscleGroup
}
