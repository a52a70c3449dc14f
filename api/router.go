package api

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the scheduler endpoints under /api/v1. All
// endpoints take the schedule request body, so they are POST.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/eerr", handler.EnergyEfficientRoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
