package entity

// Status es el estado del ciclo de vida de un documento de transacción.
// Máquina de estados: draft -> validated (terminal) o draft -> cancelled
// (terminal). Un documento que no está en draft nunca vuelve a mutarse.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusValidated Status = "validated"
	StatusCancelled Status = "cancelled"
)

// Valid reporta si s es un estado conocido.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusValidated, StatusCancelled:
		return true
	}
	return false
}
