// handlers/progression_routes.go
package handlers

import (
	"strconv"

	"mission-mischief/models"
	"mission-mischief/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(router fiber.Router, catalog *services.Catalog) {
	group := router.Group("/catalog")

	group.Get("/missions", func(c *fiber.Ctx) error {
		var missions []models.Mission
		switch {
		case c.Query("q") != "":
			missions = catalog.Search(c.Query("q"))
		case c.Query("kind") != "":
			missions = catalog.ByKind(models.MissionKind(c.Query("kind")))
		case c.Query("badge") != "":
			missions = catalog.ByBadgeGroup(c.Query("badge"))
		default:
			missions = catalog.All()
		}
		if missions == nil {
			missions = []models.Mission{}
		}
		return c.JSON(fiber.Map{"missions": missions, "total": len(missions)})
	})

	group.Get("/missions/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return badRequest(c, "invalid mission id", err)
		}
		m, ok := catalog.ByID(id)
		if !ok {
			return respondError(c, &services.Error{Kind: services.KindNotFound, Op: "get mission", Err: services.ErrMissionNotFound})
		}
		return c.JSON(m)
	})

	group.Get("/badges", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"badges": catalog.Badges()})
	})

	group.Get("/buy-ins", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"buy_ins": catalog.BuyIns()})
	})
}

func SetupProgressionRoutes(router fiber.Router, playerService *services.PlayerService) {
	group := router.Group("/player")

	group.Get("/snapshot", func(c *fiber.Ctx) error {
		snap, err := playerService.Snapshot(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(snap)
	})

	group.Get("/profile", func(c *fiber.Ctx) error {
		p, err := playerService.Profile(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	})

	group.Put("/identity", func(c *fiber.Ctx) error {
		var req struct {
			UserName   string `json:"user_name"`
			UserHandle string `json:"user_handle"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body", err)
		}
		if req.UserHandle == "" {
			return badRequest(c, "user_handle is required", nil)
		}
		p, err := playerService.SetIdentity(c.UserContext(), req.UserName, req.UserHandle)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	})

	group.Post("/fafo", func(c *fiber.Ctx) error {
		return profileResponse(c, playerService, func() (*models.PlayerProfile, error) {
			return playerService.CompleteFAFO(c.UserContext())
		})
	})

	group.Post("/submissions", func(c *fiber.Ctx) error {
		var req services.SubmitRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body", err)
		}
		return profileResponse(c, playerService, func() (*models.PlayerProfile, error) {
			if c.QueryBool("direct") {
				return playerService.DirectSubmit(c.UserContext(), req)
			}
			return playerService.Submit(c.UserContext(), req)
		})
	})

	group.Post("/buy-ins/select", func(c *fiber.Ctx) error {
		var req struct {
			BuyInID string `json:"buy_in_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body", err)
		}
		return profileResponse(c, playerService, func() (*models.PlayerProfile, error) {
			return playerService.SelectBuyIn(c.UserContext(), req.BuyInID)
		})
	})

	group.Post("/buy-ins/:id/complete", func(c *fiber.Ctx) error {
		return profileResponse(c, playerService, func() (*models.PlayerProfile, error) {
			return playerService.CompleteBuyIn(c.UserContext(), c.Params("id"))
		})
	})

	group.Post("/badges/:id", func(c *fiber.Ctx) error {
		return profileResponse(c, playerService, func() (*models.PlayerProfile, error) {
			return playerService.AwardBadge(c.UserContext(), c.Params("id"))
		})
	})

	group.Post("/debts/:id/paid", func(c *fiber.Ctx) error {
		return profileResponse(c, playerService, func() (*models.PlayerProfile, error) {
			return playerService.MarkDebtPaid(c.UserContext(), c.Params("id"))
		})
	})

	group.Post("/reset", func(c *fiber.Ctx) error {
		return profileResponse(c, playerService, func() (*models.PlayerProfile, error) {
			return playerService.Reset(c.UserContext())
		})
	})
}

// profileResponse runs a mutation and answers with the fresh snapshot.
func profileResponse(c *fiber.Ctx, playerService *services.PlayerService, mutate func() (*models.PlayerProfile, error)) error {
	p, err := mutate()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(playerService.Progression.Snapshot(p))
}
