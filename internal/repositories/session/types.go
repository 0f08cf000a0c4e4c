package session

import "github.com/KirkDiggler/bacmon/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetCurrentSessionInput struct {
}
