package store

import "errors"

// ErrNotAuthenticated: operação de store sem usuário no contexto. A operação
// é barrada antes de tocar o banco — nunca segue com dono vazio.
var ErrNotAuthenticated = errors.New("store: usuário não autenticado")

// StoreError embrulha qualquer falha de backend (conexão, SQL, registro
// inexistente). O chamador exibe mensagem genérica e preserva o estado
// anterior da view.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
