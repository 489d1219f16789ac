package deliveries

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CustomerResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`   // Opsiyonel
	Address *string `json:"address"` // Opsiyonel
	Note    string  `json:"note"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Note    *string `json:"note"`
}

// ----------------------------------------
// MÜŞTERİ CRUD
// ----------------------------------------

func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri adı boş olamaz")
		}

		customer := models.Customer{
			Name: body.Name,
			Note: body.Note,
		}
		if body.Phone != nil {
			customer.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Address != nil {
			customer.Address = strings.TrimSpace(*body.Address)
		}

		if err := database.DB.Create(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(CustomerResponse{
			ID:        customer.ID,
			Name:      customer.Name,
			Phone:     customer.Phone,
			Address:   customer.Address,
			Note:      customer.Note,
			CreatedAt: customer.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		res := make([]CustomerResponse, 0, len(customers))
		for _, cu := range customers {
			res = append(res, CustomerResponse{
				ID:        cu.ID,
				Name:      cu.Name,
				Phone:     cu.Phone,
				Address:   cu.Address,
				Note:      cu.Note,
				CreatedAt: cu.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}

func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Müşteri adı boş olamaz")
			}
			customer.Name = name
		}
		if body.Phone != nil {
			customer.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Address != nil {
			customer.Address = strings.TrimSpace(*body.Address)
		}
		if body.Note != nil {
			customer.Note = *body.Note
		}

		if err := database.DB.Save(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri güncellenemedi")
		}

		return c.JSON(CustomerResponse{
			ID:        customer.ID,
			Name:      customer.Name,
			Phone:     customer.Phone,
			Address:   customer.Address,
			Note:      customer.Note,
			CreatedAt: customer.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Teslimatı olan müşteri silinemez
		var deliveryCount int64
		database.DB.Model(&models.Delivery{}).Where("customer_id = ?", id).Count(&deliveryCount)
		if deliveryCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu müşteriye ait teslimatlar var, silinemez")
		}

		if err := database.DB.Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
