// handlers/handlers.go - Shared Handler Wiring
package handlers

import (
	"bookbound/services"
)

var gamification *services.GamificationService

// InitGamification wires the gamification engine into the handlers.
// Called once from main after the database is up.
func InitGamification(svc *services.GamificationService) {
	gamification = svc
}
