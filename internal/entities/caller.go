package entities

// Caller - аутентифицированный пользователь запроса.
type Caller struct {
	ID    string
	Email string
	Name  string
}

// Identifier используется как changed_by в журнале статусов.
func (c Caller) Identifier() string {
	if c.Email != "" {
		return c.Email
	}
	return c.ID
}
