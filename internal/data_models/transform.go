package dto

import (
	model "team-tracker.com/team-tracker/internal/models"
	"team-tracker.com/team-tracker/internal/services"
)

func (r CreateTaskRequest) ToInput() services.CreateTaskInput {
	return services.CreateTaskInput{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		AssigneeID:  r.UserID,
	}
}

func (r UpdateTaskRequest) ToInput() services.UpdateTaskInput {
	return services.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      r.Status,
		ActorID:     r.UserID,
	}
}

func (r CreateUserRequest) ToInput() services.UserInput {
	return services.UserInput{
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}
}

func NewTaskView(t *model.Task) TaskView {
	v := TaskView{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate,
		Priority:      t.Priority,
		PriorityLabel: t.Priority.Label(),
		Status:        t.Status,
		StatusLabel:   t.Status.Label(),
		ProjectID:     t.ProjectID,
		UserID:        t.UserID,
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
	}
	if t.Project != nil {
		v.ProjectName = t.Project.Name
	}
	if t.Assignee != nil {
		v.AssignedUserName = t.Assignee.Name
	}
	return v
}

func NewTaskViews(tasks []model.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, NewTaskView(&tasks[i]))
	}
	return views
}

func NewTaskDetailView(t *model.Task) TaskDetailView {
	return TaskDetailView{
		TaskView: NewTaskView(t),
		Comments: NewCommentViews(t.Comments),
		History:  NewTaskHistoryViews(t.History),
	}
}

func NewTaskHistoryView(h *model.TaskHistory) TaskHistoryView {
	v := TaskHistoryView{
		ID:          h.ID,
		Description: h.Description,
		Status:      h.Status,
		ChangedAt:   h.ChangedAt,
		UserID:      h.UserID,
	}
	if h.Status != nil {
		v.StatusLabel = h.Status.Label()
	}
	if h.User != nil {
		v.UserName = h.User.Name
	}
	return v
}

func NewTaskHistoryViews(entries []model.TaskHistory) []TaskHistoryView {
	views := make([]TaskHistoryView, 0, len(entries))
	for i := range entries {
		views = append(views, NewTaskHistoryView(&entries[i]))
	}
	return views
}

func NewTaskAuditLogViews(entries []model.TaskAuditLog) []TaskAuditLogView {
	views := make([]TaskAuditLogView, 0, len(entries))
	for _, e := range entries {
		views = append(views, TaskAuditLogView{
			ID:          e.ID,
			TaskID:      e.TaskID,
			ProjectID:   e.ProjectID,
			UserID:      e.UserID,
			Description: e.Description,
			StatusLabel: e.Status.Label(),
			ChangedAt:   e.ChangedAt,
		})
	}
	return views
}

func NewCommentView(c *model.Comment) CommentView {
	v := CommentView{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		TaskID:    c.TaskID,
		UserID:    c.UserID,
	}
	if c.User != nil {
		v.UserName = c.User.Name
	}
	return v
}

func NewCommentViews(comments []model.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, NewCommentView(&comments[i]))
	}
	return views
}

func NewProjectView(p *model.Project) ProjectView {
	v := ProjectView{
		ID:         p.ID,
		Name:       p.Name,
		UserID:     p.UserID,
		TasksCount: p.TasksCount,
	}
	if p.Owner != nil {
		v.OwnerName = p.Owner.Name
	}
	return v
}

func NewProjectViews(projects []model.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for i := range projects {
		views = append(views, NewProjectView(&projects[i]))
	}
	return views
}

func NewUserView(u *model.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		RoleLabel: u.Role.Label(),
	}
}

func NewUserViews(users []model.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}

func NewPerformanceReportViews(rows []services.UserPerformance) []PerformanceReportView {
	views := make([]PerformanceReportView, 0, len(rows))
	for _, r := range rows {
		views = append(views, PerformanceReportView{
			UserID:                          r.User.ID,
			UserName:                        r.User.Name,
			CompletedTasks:                  r.CompletedTasks,
			AverageCompletedTasksLast30Days: r.AverageCompletedTasksLast30Days,
		})
	}
	return views
}
