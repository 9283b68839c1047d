package pkg

import (
	"errors"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

// ParseID converte o parâmetro de rota em um identificador numérico.
func ParseID(raw string) (uint, error) {
	if raw == "" {
		return 0, errors.New("id não pode ser vazio")
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New("id deve ser um inteiro positivo")
	}
	return uint(parsed), nil
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// GenerateULID produz um identificador de correlação para requisições.
func GenerateULID() string {
	entropy := ulid.DefaultEntropy()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
