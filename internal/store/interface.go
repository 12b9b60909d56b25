package store

type Repository interface {
	// Confirmation journal
	RecordConfirmation(c *Confirmation) (int64, error)
	ListConfirmations(limit int) ([]*Confirmation, error)
	GetConfirmationsByTransaction(txID int64) ([]*Confirmation, error)
	CountByOutcome() ([]OutcomeCount, error)

	Close() error
}
