package audit

import (
	"fmt"
	"time"

	"team-tracker.com/team-tracker/internal/constants"
)

const dateLayout = "02/01/2006"

const (
	TaskCreated           = "Tarefa criada"
	TaskMarkedCompleted   = "Tarefa marcada como concluída"
	TaskUnmarkedCompleted = "Tarefa desmarcada como concluída"
)

// Change is one field-level difference. Label is the sentence head, e.g.
// "Título alterado"; Old and New are rendered according to their type.
type Change struct {
	Label string
	Old   any
	New   any
}

func TitleChange(old, new string) Change {
	return Change{Label: "Título alterado", Old: old, New: new}
}

func DescriptionChange(old, new string) Change {
	return Change{Label: "Descrição alterada", Old: old, New: new}
}

func DueDateChange(old, new time.Time) Change {
	return Change{Label: "Data de entrega alterada", Old: old, New: new}
}

func StatusChange(old, new constants.TaskStatus) Change {
	return Change{Label: "Status alterado", Old: old, New: new}
}

// Describe renders changes in order, one sentence each.
func Describe(changes []Change) []string {
	descriptions := make([]string, 0, len(changes))
	for _, c := range changes {
		descriptions = append(descriptions, fmt.Sprintf("%s de %s para %s", c.Label, formatValue(c.Old), formatValue(c.New)))
	}
	return descriptions
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return "'" + val + "'"
	case time.Time:
		return val.Format(dateLayout)
	case constants.TaskStatus:
		return "'" + val.Label() + "'"
	case constants.TaskPriority:
		return "'" + val.Label() + "'"
	default:
		return fmt.Sprint(val)
	}
}

// CompletionChange returns the side-effect entry for a status transition,
// or "" when the transition neither enters nor leaves Completed.
func CompletionChange(old, new constants.TaskStatus) string {
	switch {
	case old != constants.StatusCompleted && new == constants.StatusCompleted:
		return TaskMarkedCompleted
	case old == constants.StatusCompleted && new != constants.StatusCompleted:
		return TaskUnmarkedCompleted
	default:
		return ""
	}
}

func TaskRemoved(title string) string {
	return fmt.Sprintf("Tarefa '%s' foi removida", title)
}

func CommentAdded(content string) string {
	return fmt.Sprintf("Comentário adicionado: \"%s\"", content)
}
