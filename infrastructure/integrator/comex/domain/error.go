package comexdomain

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indica que a ComexAPI respondeu com sucesso mas sem dados.
// Para recursos de listagem isso é tratado como falha transitória e entra no
// ciclo de novas tentativas do loader.
var ErrEmptyDataset = errors.New("comexapi: resposta sem dados")

// APIError é a falha lógica reportada pela ComexAPI (success=false).
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("comexapi %s: falha reportada sem mensagem", e.Endpoint)
	}

	return fmt.Sprintf("comexapi %s: %s", e.Endpoint, e.Message)
}

// DecodeError indica payload fora do formato esperado. Repetir a chamada em
// seguida não resolve, mas a tentativa conta para o limite do loader.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("comexapi %s: resposta fora do formato esperado: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsAPIError verifica se o erro é uma falha lógica da ComexAPI.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsDecodeError verifica se o erro veio de um payload mal formado.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}
