package constants

type TaskStatus int

const (
	StatusPending    TaskStatus = 1
	StatusInProgress TaskStatus = 2
	StatusCompleted  TaskStatus = 3
	StatusCancelled  TaskStatus = 4
)

var taskStatusNames = map[TaskStatus]string{
	StatusPending:    "Pending",
	StatusInProgress: "InProgress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

// taskStatusLabels holds the display text used in history entries and views.
var taskStatusLabels = map[TaskStatus]string{
	StatusPending:    "Pendente",
	StatusInProgress: "Em andamento",
	StatusCompleted:  "Concluída",
	StatusCancelled:  "Cancelada",
}

var taskStatusDescriptions = map[TaskStatus]string{
	StatusPending:    "Tarefa pendente de início",
	StatusInProgress: "Tarefa em andamento",
	StatusCompleted:  "Tarefa concluída",
	StatusCancelled:  "Tarefa cancelada",
}

func (s TaskStatus) IsValid() bool {
	_, ok := taskStatusNames[s]
	return ok
}

func (s TaskStatus) String() string {
	if name, ok := taskStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s TaskStatus) Label() string {
	if label, ok := taskStatusLabels[s]; ok {
		return label
	}
	return s.String()
}

func (s TaskStatus) Description() string {
	return taskStatusDescriptions[s]
}
