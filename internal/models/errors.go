package models

// ValidationError indica entrada malformada vinda de formulário ou de valor
// enumerado fora do domínio. Bloqueia a escrita; nunca derruba a view.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
