// handlers/trial_routes.go
package handlers

import (
	"time"

	"mission-mischief/middleware"
	"mission-mischief/models"
	"mission-mischief/services"

	"github.com/gofiber/fiber/v2"
)

type trialView struct {
	*models.Trial
	Clock services.TrialClock `json:"clock"`
}

func viewTrial(t *models.Trial, now time.Time) trialView {
	return trialView{Trial: t, Clock: services.TimeRemaining(t, now)}
}

func SetupTrialRoutes(router fiber.Router, playerService *services.PlayerService) {
	group := router.Group("/trials", middleware.PlayerContextMiddleware())

	group.Get("/", func(c *fiber.Ctx) error {
		trials, err := playerService.ListTrials(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		now := playerService.Now()
		status := c.Query("status")
		views := make([]trialView, 0, len(trials))
		for _, t := range trials {
			if status != "" && string(t.Status) != status {
				continue
			}
			views = append(views, viewTrial(t, now))
		}
		return c.JSON(fiber.Map{"trials": views})
	})

	group.Get("/:id", func(c *fiber.Ctx) error {
		t, err := playerService.Trial(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(viewTrial(t, playerService.Now()))
	})

	group.Post("/", func(c *fiber.Ctx) error {
		var req services.Accusation
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body", err)
		}
		t, err := playerService.Accuse(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(viewTrial(t, playerService.Now()))
	})

	group.Post("/:id/votes", func(c *fiber.Ctx) error {
		var req struct {
			Verdict models.Verdict `json:"verdict"`
			Voter   string         `json:"voter"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body", err)
		}
		voter := req.Voter
		if voter == "" {
			voter = middleware.PlayerHandle(c)
		}
		t, err := playerService.Vote(c.UserContext(), c.Params("id"), req.Verdict, voter)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(viewTrial(t, playerService.Now()))
	})

	group.Post("/:id/conclude", func(c *fiber.Ctx) error {
		t, outcome, err := playerService.ConcludeTrial(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"trial":    viewTrial(t, playerService.Now()),
			"outcome":  outcome,
			"headline": services.VerdictHeadline(outcome),
		})
	})

	router.Get("/honor/:user", func(c *fiber.Ctx) error {
		rec, err := playerService.RemoteHonor(c.UserContext(), c.Params("user"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rec)
	})
}
