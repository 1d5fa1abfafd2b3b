package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"productos/internal/middleware"
	"productos/internal/models"
	"productos/internal/repositories"
	"productos/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MsgInvalidURL is returned when the id in the URL cannot address a product.
const MsgInvalidURL = "URL No válido"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	// No input gate: the handler answers a rejected id as an invalid URL.
	productRoutes.Get("/:id", middleware.Validate(idRules), h.HandleGetProductByID)
	productRoutes.Post("/", middleware.Validate(createRules), middleware.HandleInputErrors, h.HandleCreateProduct)
	productRoutes.Put("/:id", middleware.Validate(updateRules), middleware.HandleInputErrors, h.HandleUpdateProduct)
	productRoutes.Patch("/:id", middleware.Validate(idRules), middleware.HandleInputErrors, h.HandleUpdateAvailability)
	productRoutes.Delete("/:id", middleware.Validate(idRules), middleware.HandleInputErrors, h.HandleDeleteProduct)
}

func notFoundMessage(id string) string {
	return fmt.Sprintf("El id:%s no generó ninguna respuesta", id)
}

func productNotFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": notFoundMessage(id),
	})
}

func invalidURL(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": MsgInvalidURL,
	})
}

// productID reads the id path parameter. It fails for ids the store cannot
// address, such as values overflowing int.
func productID(c *fiber.Ctx) (string, int, error) {
	raw := c.Params("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return raw, 0, fmt.Errorf("invalid product id %q: %w", raw, err)
	}
	return raw, id, nil
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return fmt.Errorf("get all products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	raw, id, err := productID(c)
	if errs := middleware.InputErrors(c); err == nil && len(errs) > 0 {
		err = errs
	}
	if err != nil {
		logrus.WithError(err).Debug("Rejected product lookup")
		return invalidURL(c)
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c, raw)
		}
		return fmt.Errorf("get product %d: %w", id, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleCreateProduct creates a new product from a validated body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	body, err := middleware.RequestBody(c)
	if err != nil {
		return err
	}
	input := newProductInput(body)

	product, err := h.service.CreateProduct(input.Name, input.Price)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleUpdateProduct overwrites name, price and availability of a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	raw, id, err := productID(c)
	if err != nil {
		return invalidURL(c)
	}
	body, err := middleware.RequestBody(c)
	if err != nil {
		return err
	}
	input := newProductInput(body)

	product, err := h.service.UpdateProduct(id, models.Product{
		Name:      input.Name,
		Price:     input.Price,
		Available: input.Available,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c, raw)
		}
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleUpdateAvailability flips the availability of a product. The body is ignored.
func (h *ProductHandler) HandleUpdateAvailability(c *fiber.Ctx) error {
	raw, id, err := productID(c)
	if err != nil {
		return invalidURL(c)
	}

	product, err := h.service.ToggleAvailability(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c, raw)
		}
		return fmt.Errorf("toggle availability of product %d: %w", id, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleDeleteProduct permanently deletes a product and answers with a bare
// JSON string.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	raw, id, err := productID(c)
	if err != nil {
		return invalidURL(c)
	}

	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c, raw)
		}
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return c.JSON(fmt.Sprintf("El producto id: %s se eliminó correctamente", raw))
}
