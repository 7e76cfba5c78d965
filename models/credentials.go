package models

type Identity struct {
	UserId   string
	Email    string
	FullName string
}

type Credentials struct {
	ActorIdentity Identity // email, for the audit log
	Role          Role
}

func (u User) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			UserId:   u.Id,
			Email:    u.Email,
			FullName: u.FullName,
		},
		Role: u.Role,
	}
}
