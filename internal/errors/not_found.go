package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

func notFound(message string) *Exception {
	return &Exception{
		Kind:       KindNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func TaskNotFound(id uuid.UUID) *Exception {
	return notFound(fmt.Sprintf("Tarefa com id %s não encontrada.", id))
}

func ProjectNotFound(id uuid.UUID) *Exception {
	return notFound(fmt.Sprintf("Projeto com id %s não encontrado.", id))
}

func UserNotFound(id uuid.UUID) *Exception {
	return notFound(fmt.Sprintf("Usuário com id %s não encontrado.", id))
}

func CommentNotFound(id uuid.UUID) *Exception {
	return notFound(fmt.Sprintf("Comentário com id %s não encontrado.", id))
}
