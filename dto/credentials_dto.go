package dto

import (
	"github.com/driveline/rental-backend/models"
)

type Identity struct {
	UserId   string `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

type Credentials struct {
	Role          string   `json:"role"`
	ActorIdentity Identity `json:"actor_identity"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	return Credentials{
		Role: creds.Role.String(),
		ActorIdentity: Identity{
			UserId:   creds.ActorIdentity.UserId,
			Email:    creds.ActorIdentity.Email,
			FullName: creds.ActorIdentity.FullName,
		},
	}
}

func AdaptCredential(dto Credentials) models.Credentials {
	return models.Credentials{
		Role: models.RoleFromString(dto.Role),
		ActorIdentity: models.Identity{
			UserId:   dto.ActorIdentity.UserId,
			Email:    dto.ActorIdentity.Email,
			FullName: dto.ActorIdentity.FullName,
		},
	}
}
