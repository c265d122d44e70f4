package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shop-service/middlewares"
	"shop-service/models"
	"shop-service/rabbitmq"
	"shop-service/services"
)

var orderService services.Order

func SetOrderService(s services.Order) {
	orderService = s
}

var rabbitMQ *rabbitmq.RabbitMQ

func SetRabbitMQ(rmq *rabbitmq.RabbitMQ) {
	rabbitMQ = rmq
}

func ListOrders(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order_list", ok)
	}()

	orders, err := orderService.List(models.OrderFilter{})
	if err != nil {
		respondServiceError(c, "Failed to retrieve order list.", err)
		return
	}
	respondOK(c, http.StatusOK, "Order list retrieved successfully.", orders)
}

func CreateOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order_create", ok)
	}()

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, map[string]string{"body": err.Error()})
		return
	}

	order, err := orderService.Create(req)
	if err != nil {
		respondServiceError(c, "Failed to create order.", err)
		return
	}
	respondOK(c, http.StatusCreated, "Order created successfully.", order)

	publishOrderEvent(order, "created")
	if rabbitMQ != nil {
		// schedule a later check so orders stuck in pending get canceled
		event := orderEvent(order, "pending_check")
		if err := rabbitMQ.PublishDelayedEvent(event, 15*time.Minute); err != nil {
			log.Printf("Failed to publish delayed pending check event: %v", err)
		}
	}
}

func GetOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order_get", ok)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondValidation(c, map[string]string{"id": "must be an integer"})
		return
	}

	order, err := orderService.Get(id)
	if err != nil {
		respondServiceError(c, "Failed to retrieve order details.", err)
		return
	}
	respondOK(c, http.StatusOK, "Order details retrieved successfully.", order)
}

func UpdateOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order_update", ok)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondValidation(c, map[string]string{"id": "must be an integer"})
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, map[string]string{"body": err.Error()})
		return
	}

	order, err := orderService.Update(id, req)
	if err != nil {
		respondServiceError(c, "Failed to update order.", err)
		return
	}
	respondOK(c, http.StatusOK, "Order updated successfully.", order)

	publishOrderEvent(order, "status_updated")
}

func DeleteOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order_delete", ok)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondValidation(c, map[string]string{"id": "must be an integer"})
		return
	}

	order, err := orderService.Get(id)
	if err != nil {
		respondServiceError(c, "Failed to delete order.", err)
		return
	}

	if err := orderService.Delete(id); err != nil {
		respondServiceError(c, "Failed to delete order.", err)
		return
	}
	respondOK(c, http.StatusOK, "Order deleted successfully.", nil)

	publishOrderEvent(order, "deleted")
}

func FilterOrders(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order_filter", ok)
	}()

	filter, fieldErrs := parseOrderFilter(c)
	if fieldErrs != nil {
		respondValidation(c, fieldErrs)
		return
	}

	orders, err := orderService.List(filter)
	if err != nil {
		respondServiceError(c, "Failed to filter orders.", err)
		return
	}
	respondOK(c, http.StatusOK, "Orders filtered successfully.", orders)
}

func parseOrderFilter(c *gin.Context) (models.OrderFilter, map[string]string) {
	var filter models.OrderFilter

	if raw, ok := c.GetQuery("start_date"); ok {
		t, err := parseDate(raw)
		if err != nil {
			return filter, map[string]string{"start_date": "must be a valid date"}
		}
		filter.StartDate = &t
	}
	if raw, ok := c.GetQuery("end_date"); ok {
		t, err := parseDate(raw)
		if err != nil {
			return filter, map[string]string{"end_date": "must be a valid date"}
		}
		filter.EndDate = &t
	}
	if raw, ok := c.GetQuery("status"); ok {
		filter.Status = models.OrderStatus(raw)
		if !filter.Status.Valid() {
			return filter, map[string]string{"status": "must be one of pending, completed, canceled"}
		}
	}
	if raw, ok := c.GetQuery("user_id"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return filter, map[string]string{"user_id": "must be a positive integer"}
		}
		filter.UserID = v
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func orderEvent(order *models.Order, eventType string) models.OrderEvent {
	return models.OrderEvent{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Type:     eventType,
		Status:   order.Status,
		Total:    order.Total,
		Occurred: time.Now(),
	}
}

func publishOrderEvent(order *models.Order, eventType string) {
	if rabbitMQ == nil {
		return
	}

	priority := 5
	if order.Total > 1000 {
		priority = 9
	}
	if order.Status == models.StatusCanceled {
		priority = 8
	}

	if err := rabbitMQ.PublishOrderEvent(orderEvent(order, eventType), priority); err != nil {
		log.Printf("Failed to publish order %s event: %v", eventType, err)
	}
}
