package errors

import (
	"fmt"
	"net/http"
)

func invalidOperation(message string) *Exception {
	return &Exception{
		Kind:       KindInvalidOperation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func ProjectTaskLimit(limit int) *Exception {
	return invalidOperation(fmt.Sprintf("Limite de %d tarefas por projeto atingido.", limit))
}

var ErrProjectHasPendingTasks = invalidOperation("Não é possível excluir um projeto com tarefas pendentes.")

var ErrInvalidPriority = invalidOperation("Prioridade da tarefa inválida.")

var ErrInvalidStatus = invalidOperation("Status da tarefa inválido.")

var ErrEmailTaken = invalidOperation("Já existe um usuário com este e-mail.")

var ErrUserInUse = invalidOperation("Usuário possui projetos, tarefas ou comentários vinculados.")
