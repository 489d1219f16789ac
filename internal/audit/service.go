package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	beforeStr := "null" // Default: null JSON
	afterStr := "null"  // Default: null JSON

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
		Undone:      false,
		IsUndone:    false,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}

	return nil
}

// UndoLog - Bir audit log'u undo et
func UndoLog(logID uint, userID uint, userName string) error {
	var log models.AuditLog
	if err := database.DB.First(&log, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log bulunamadı: %w", err)
	}

	// Zaten undo edilmiş mi?
	if log.IsUndone {
		return fmt.Errorf("bu işlem zaten geri alınmış")
	}

	// Ekim defteri kayıtları değiştirilmez ve silinmez, undo da edilmez
	if log.EntityType == "planting_event" {
		return fmt.Errorf("ekim defteri kayıtları geri alınamaz")
	}

	// Undo işlemini gerçekleştir
	switch log.Action {
	case models.AuditActionCreate:
		// Create ise entity'yi sil
		if err := deleteEntity(log.EntityType, log.EntityID); err != nil {
			return fmt.Errorf("entity silinemedi: %w", err)
		}

	case models.AuditActionUpdate:
		// Update ise önceki haline geri döndür
		if err := restoreEntity(log.EntityType, log.EntityID, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri yüklenemedi: %w", err)
		}

	case models.AuditActionDelete:
		// Delete ise entity'yi geri oluştur (silinen hal BeforeData'da)
		if err := recreateEntity(log.EntityType, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri oluşturulamadı: %w", err)
		}

	default:
		return fmt.Errorf("bu işlem türü geri alınamaz")
	}

	// Log'u işaretle
	now := time.Now()
	log.IsUndone = true
	log.UndoneBy = &userID
	log.UndoneAt = &now

	if err := database.DB.Save(&log).Error; err != nil {
		return fmt.Errorf("log güncellenemedi: %w", err)
	}

	// Undo işlemi için yeni bir log oluştur
	undoLog := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Geri alındı: %s", log.Description),
		BeforeData:  log.AfterData,
		AfterData:   log.BeforeData,
		Undone:      true,
		IsUndone:    false,
	}

	if err := database.DB.Create(&undoLog).Error; err != nil {
		return fmt.Errorf("undo log kaydedilemedi: %w", err)
	}

	return nil
}

// deleteEntity - Entity'yi sil
func deleteEntity(entityType string, entityID uint) error {
	switch entityType {
	case "plot":
		return database.DB.Delete(&models.Plot{}, "id = ?", entityID).Error
	case "bed":
		return database.DB.Delete(&models.Bed{}, "id = ?", entityID).Error
	case "nursery":
		return database.DB.Delete(&models.Nursery{}, "id = ?", entityID).Error
	case "crop_variety":
		return database.DB.Delete(&models.CropVariety{}, "id = ?", entityID).Error
	case "planting":
		return database.DB.Delete(&models.Planting{}, "id = ?", entityID).Error
	case "activity":
		return database.DB.Delete(&models.Activity{}, "id = ?", entityID).Error
	case "customer":
		return database.DB.Delete(&models.Customer{}, "id = ?", entityID).Error
	case "delivery":
		return database.DB.Delete(&models.Delivery{}, "id = ?", entityID).Error
	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

// recreateEntity - Silinen entity'yi geri oluştur
func recreateEntity(entityType string, dataJSON string) error {
	switch entityType {
	case "plot":
		var plot models.Plot
		if err := json.Unmarshal([]byte(dataJSON), &plot); err != nil {
			return err
		}
		plot.ID = 0 // Yeni entity oluştur
		return database.DB.Create(&plot).Error

	case "bed":
		var bed models.Bed
		if err := json.Unmarshal([]byte(dataJSON), &bed); err != nil {
			return err
		}
		bed.ID = 0
		return database.DB.Create(&bed).Error

	case "nursery":
		var nursery models.Nursery
		if err := json.Unmarshal([]byte(dataJSON), &nursery); err != nil {
			return err
		}
		nursery.ID = 0
		return database.DB.Create(&nursery).Error

	case "crop_variety":
		var variety models.CropVariety
		if err := json.Unmarshal([]byte(dataJSON), &variety); err != nil {
			return err
		}
		variety.ID = 0
		return database.DB.Create(&variety).Error

	case "planting":
		var planting models.Planting
		if err := json.Unmarshal([]byte(dataJSON), &planting); err != nil {
			return err
		}
		planting.ID = 0
		for i := range planting.Events {
			planting.Events[i].ID = 0
			planting.Events[i].PlantingID = 0
		}
		// BeforeData'da olaylar da varsa cascade ile birlikte oluşur
		return database.DB.Create(&planting).Error

	case "activity":
		var activity models.Activity
		if err := json.Unmarshal([]byte(dataJSON), &activity); err != nil {
			return err
		}
		activity.ID = 0
		return database.DB.Create(&activity).Error

	case "customer":
		var customer models.Customer
		if err := json.Unmarshal([]byte(dataJSON), &customer); err != nil {
			return err
		}
		customer.ID = 0
		return database.DB.Create(&customer).Error

	case "delivery":
		var delivery models.Delivery
		if err := json.Unmarshal([]byte(dataJSON), &delivery); err != nil {
			return err
		}
		delivery.ID = 0
		for i := range delivery.Items {
			delivery.Items[i].ID = 0
			delivery.Items[i].DeliveryID = 0
		}
		// BeforeData'da kalemler de varsa cascade ile birlikte oluşur
		return database.DB.Create(&delivery).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

// restoreEntity - Entity'yi geri yükle (update)
func restoreEntity(entityType string, entityID uint, dataJSON string) error {
	switch entityType {
	case "plot":
		var plot models.Plot
		if err := json.Unmarshal([]byte(dataJSON), &plot); err != nil {
			return err
		}
		return database.DB.Model(&models.Plot{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"name":        plot.Name,
			"description": plot.Description,
			"area_m2":     plot.AreaM2,
		}).Error

	case "bed":
		var bed models.Bed
		if err := json.Unmarshal([]byte(dataJSON), &bed); err != nil {
			return err
		}
		return database.DB.Model(&models.Bed{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"plot_id":  bed.PlotID,
			"name":     bed.Name,
			"length_m": bed.LengthM,
			"width_m":  bed.WidthM,
			"note":     bed.Note,
		}).Error

	case "nursery":
		var nursery models.Nursery
		if err := json.Unmarshal([]byte(dataJSON), &nursery); err != nil {
			return err
		}
		return database.DB.Model(&models.Nursery{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"name":        nursery.Name,
			"description": nursery.Description,
		}).Error

	case "crop_variety":
		var variety models.CropVariety
		if err := json.Unmarshal([]byte(dataJSON), &variety); err != nil {
			return err
		}
		return database.DB.Model(&models.CropVariety{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"name":                variety.Name,
			"crop":                variety.Crop,
			"dtm_direct_seed_min": variety.DTMDirectSeedMin,
			"dtm_direct_seed_max": variety.DTMDirectSeedMax,
			"dtm_transplant_min":  variety.DTMTransplantMin,
			"dtm_transplant_max":  variety.DTMTransplantMax,
			"note":                variety.Note,
		}).Error

	case "activity":
		var activity models.Activity
		if err := json.Unmarshal([]byte(dataJSON), &activity); err != nil {
			return err
		}
		return database.DB.Model(&models.Activity{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"date":        activity.Date,
			"type":        activity.Type,
			"bed_id":      activity.BedID,
			"planting_id": activity.PlantingID,
			"description": activity.Description,
		}).Error

	case "customer":
		var customer models.Customer
		if err := json.Unmarshal([]byte(dataJSON), &customer); err != nil {
			return err
		}
		return database.DB.Model(&models.Customer{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"name":    customer.Name,
			"phone":   customer.Phone,
			"address": customer.Address,
			"note":    customer.Note,
		}).Error

	case "delivery":
		var delivery models.Delivery
		if err := json.Unmarshal([]byte(dataJSON), &delivery); err != nil {
			return err
		}
		return database.DB.Model(&models.Delivery{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"customer_id": delivery.CustomerID,
			"date":        delivery.Date,
			"note":        delivery.Note,
		}).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}
