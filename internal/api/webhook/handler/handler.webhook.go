// Package webhookhdl ingests push payloads from the tracking source:
// task events and client sheet rows, one object or a batch per request.
package webhookhdl

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	clientsvc "fieldpulse/internal/api/client/service"
	tasksvc "fieldpulse/internal/api/task/service"
	"fieldpulse/internal/api/webhook/dto"
	"fieldpulse/config"
	"fieldpulse/internal/common"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/utility"
)

// WebhookHandler ingests producer pushes.
type WebhookHandler struct {
	tasks           *tasksvc.TaskService
	clients         *clientsvc.ClientService
	validate        *validator.Validate
	allFailedStatus int
}

// NewWebhookHandler creates the handler.
func NewWebhookHandler(cfg *config.Configuration, tasks *tasksvc.TaskService, clients *clientsvc.ClientService) *WebhookHandler {
	return &WebhookHandler{
		tasks:           tasks,
		clients:         clients,
		validate:        validator.New(),
		allFailedStatus: cfg.WebhookAllFailedStatus,
	}
}

// decodeItems accepts either a single JSON object or an array of
// objects and returns the item slice.
func decodeItems(body []byte) ([]map[string]interface{}, error) {
	var items []map[string]interface{}
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var single map[string]interface{}
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("body must be a JSON object or array of objects")
	}
	return []map[string]interface{}{single}, nil
}

// respond writes the batch result. A batch where every item failed gets
// the configured status so the producer's retry policy can see it; any
// success returns 200 because the accepted items are already stored.
func (h *WebhookHandler) respond(c fiber.Ctx, batch dto.BatchResult) error {
	status := common.StatusOK
	if batch.AllFailed() {
		status = h.allFailedStatus
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    status,
		"message": "Webhook processed",
		"data":    batch,
		"status":  "success",
	})
}

// Tasks ingests task events. Each item is validated and upserted
// independently; one bad item never rejects its batch mates.
func (h *WebhookHandler) Tasks(c fiber.Ctx) error {
	log := logger.GetSyncLogger()

	items, err := decodeItems(c.Body())
	if err != nil {
		return c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code":    common.ErrCodeValidationInput.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}

	results := make([]dto.ItemResult, 0, len(items))
	for i, item := range items {
		keys := dto.TaskKeys{TaskID: utility.CoerceString(item["taskID"])}
		if err := h.validate.Struct(keys); err != nil {
			results = append(results, dto.ItemResult{
				Index: i, Status: dto.StatusFailed, Error: "missing taskID",
			})
			continue
		}

		key, created, err := h.tasks.UpsertPayload(c.Context(), item)
		if err != nil {
			log.WithError(err).WithField("taskID", key).Warn("Webhook task item failed")
			results = append(results, dto.ItemResult{
				Index: i, Key: key, Status: dto.StatusFailed, Error: err.Error(),
			})
			continue
		}

		status := dto.StatusUpdated
		if created {
			status = dto.StatusCreated
		}
		results = append(results, dto.ItemResult{Index: i, Key: key, Status: status})
	}

	batch := dto.Fold(results)
	log.WithFields(map[string]interface{}{
		"processed": batch.Processed,
		"success":   batch.SuccessCount,
		"failed":    batch.FailureCount,
	}).Info("Task webhook batch processed")

	return h.respond(c, batch)
}

// Clients ingests client sheet rows.
func (h *WebhookHandler) Clients(c fiber.Ctx) error {
	log := logger.GetSyncLogger()

	items, err := decodeItems(c.Body())
	if err != nil {
		return c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code":    common.ErrCodeValidationInput.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}

	results := make([]dto.ItemResult, 0, len(items))
	for i, item := range items {
		keys := dto.ClientKeys{
			ID:         utility.CoerceString(item["ID"]),
			ClientName: utility.CoerceString(item["Client Name (*)"]),
		}
		if err := h.validate.Struct(keys); err != nil {
			results = append(results, dto.ItemResult{
				Index: i, Status: dto.StatusFailed, Error: "missing ID and Client Name (*)",
			})
			continue
		}

		key, created, err := h.clients.UpsertSheetRow(c.Context(), item)
		if err != nil {
			log.WithError(err).WithField("client", key).Warn("Webhook client item failed")
			results = append(results, dto.ItemResult{
				Index: i, Key: key, Status: dto.StatusFailed, Error: err.Error(),
			})
			continue
		}

		status := dto.StatusUpdated
		if created {
			status = dto.StatusCreated
		}
		results = append(results, dto.ItemResult{Index: i, Key: key, Status: status})
	}

	batch := dto.Fold(results)
	log.WithFields(map[string]interface{}{
		"processed": batch.Processed,
		"success":   batch.SuccessCount,
		"failed":    batch.FailureCount,
	}).Info("Client webhook batch processed")

	return h.respond(c, batch)
}
