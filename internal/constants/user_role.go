package constants

type UserRole int

const (
	RoleDefault UserRole = 1
	RoleManager UserRole = 2
)

var userRoleNames = map[UserRole]string{
	RoleDefault: "Default",
	RoleManager: "Manager",
}

var userRoleLabels = map[UserRole]string{
	RoleDefault: "Usuário padrão",
	RoleManager: "Gerente",
}

func (r UserRole) IsValid() bool {
	_, ok := userRoleNames[r]
	return ok
}

func (r UserRole) String() string {
	if name, ok := userRoleNames[r]; ok {
		return name
	}
	return "Unknown"
}

func (r UserRole) Label() string {
	if label, ok := userRoleLabels[r]; ok {
		return label
	}
	return r.String()
}
