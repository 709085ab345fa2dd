package handlers

import (
	"errors"

	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupShopRoutes wires the item catalog, purchases and hunter inventories.
func SetupShopRoutes(app *fiber.App, shop *services.ShopService) {
	app.Get("/api/shop-items", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		items, err := shop.List()
		if err != nil {
			return serviceError(c, err, "Shop items")
		}
		return c.JSON(items)
	})

	app.Get("/api/shop-items/:id", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid shop item id")
		}
		item, err := shop.Get(id)
		if err != nil {
			return serviceError(c, err, "Shop item")
		}
		return c.JSON(item)
	})

	app.Post("/api/shop-items", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		var req models.ShopItemCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid shop item data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid shop item data")
		}
		item, err := shop.Create(&req)
		if err != nil {
			return serviceError(c, err, "Shop item")
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	app.Patch("/api/shop-items/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid shop item id")
		}
		var req models.ShopItemPatchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid shop item data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid shop item data")
		}
		item, err := shop.Patch(id, &req)
		if err != nil {
			return serviceError(c, err, "Shop item")
		}
		return c.JSON(item)
	})

	app.Delete("/api/shop-items/:id", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid shop item id")
		}
		if err := shop.Delete(id); err != nil {
			return serviceError(c, err, "Shop item")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Post("/api/shop-items/:id/purchase", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid shop item id")
		}

		var req models.PurchaseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid purchase data")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return badRequest(c, "Invalid purchase data")
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		user := middleware.CurrentUser(c)
		purchase, err := shop.Purchase(user.ID, id, req.Quantity)
		if err != nil {
			if errors.Is(err, services.ErrNotEnoughCoins) {
				return badRequest(c, "Not enough coins")
			}
			return serviceError(c, err, "Shop item")
		}
		return c.Status(fiber.StatusCreated).JSON(purchase)
	})

	app.Get("/api/user-items", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		inventory, err := shop.Inventory(user.ID)
		if err != nil {
			return serviceError(c, err, "User items")
		}
		return c.JSON(inventory)
	})
}
