package constants

// TaskPriority is fixed when a task is created.
type TaskPriority int

const (
	PriorityLow    TaskPriority = 1
	PriorityMedium TaskPriority = 2
	PriorityHigh   TaskPriority = 3
	PriorityUrgent TaskPriority = 4
)

var taskPriorityNames = map[TaskPriority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

var taskPriorityLabels = map[TaskPriority]string{
	PriorityLow:    "Prioridade baixa",
	PriorityMedium: "Prioridade média",
	PriorityHigh:   "Prioridade alta",
	PriorityUrgent: "Prioridade urgente",
}

func (p TaskPriority) IsValid() bool {
	_, ok := taskPriorityNames[p]
	return ok
}

func (p TaskPriority) String() string {
	if name, ok := taskPriorityNames[p]; ok {
		return name
	}
	return "Unknown"
}

func (p TaskPriority) Label() string {
	if label, ok := taskPriorityLabels[p]; ok {
		return label
	}
	return p.String()
}
