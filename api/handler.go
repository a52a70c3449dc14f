package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"energy-scheduler/config"
	"energy-scheduler/internal/core"
	"energy-scheduler/internal/requests"
	"energy-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	EnergyEfficientRoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.simulate(ctx, core.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.simulate(ctx, core.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.simulate(ctx, core.PriorityScheduling)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.simulate(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) EnergyEfficientRoundRobin(ctx *fiber.Ctx) error {
	return s.simulate(ctx, core.EnergyEfficientRoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return validationError(ctx, err)
	}

	results, err := schedulers.ScheduleAll(processes, quantum)
	if err != nil {
		return validationError(ctx, err)
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) simulate(ctx *fiber.Ctx, algo core.Algorithm) error {
	processes, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return validationError(ctx, err)
	}

	response, err := schedulers.Schedule(algo, processes, quantum)
	if err != nil {
		return validationError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]core.Process, int, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, 0, errInvalidRequest
	}

	processes, err := request.Processes()
	if err != nil {
		return nil, 0, err
	}

	quantum := request.TimeQuantum
	if quantum == 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	return processes, quantum, nil
}

var errInvalidRequest = errors.New("invalid request format")

func validationError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
