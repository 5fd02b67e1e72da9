package scheduling

import (
	"errors"
	"fmt"
)

// ===============================
// Erros de domínio
// ===============================

// StateError nomeia a transição rejeitada (nunca vaza stack trace na borda).
type StateError struct {
	From Status
	To   Status
}

func (e StateError) Error() string {
	return fmt.Sprintf("transition %s -> %s not permitted", e.From, e.To)
}

func IsStateError(err error) bool {
	var se StateError
	return errors.As(err, &se)
}

// ValidationError aponta o campo estrutural violado, com detalhe suficiente
// para o chamador corrigir a entrada.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
