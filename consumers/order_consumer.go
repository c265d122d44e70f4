package consumers

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"shop-service/config"
	"shop-service/models"
	"shop-service/repositories"
)

func StartOrderConsumer(ch *amqp.Channel, cfg *config.Config, orders repositories.OrderRepository) {
	msgs, err := ch.Consume(
		cfg.OrderQueue,
		"shop-service", // consumer tag
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("Failed to register consumer: %v", err)
	}

	go func() {
		for msg := range msgs {
			processOrderMessage(msg, orders)
		}
	}()

	dlqMsgs, err := ch.Consume(
		cfg.DeadLetterQueue,
		"shop-service-dlq", // consumer tag
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,
	)
	if err != nil {
		log.Printf("Failed to register DLQ consumer: %v", err)
		return
	}

	go func() {
		for msg := range dlqMsgs {
			processDeadLetterMessage(msg)
		}
	}()
}

func processOrderMessage(msg amqp.Delivery, orders repositories.OrderRepository) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in message processing: %v", r)
		}
	}()

	var event models.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Invalid event payload: %s", msg.Body)
		if err := msg.Nack(false, false); err != nil {
			return
		} // reject without requeue, lands in the DLQ
		return
	}

	log.Printf("Processing order event: ID=%d, Type=%s", event.OrderID, event.Type)

	switch event.Type {
	case "created":
		handleOrderCreated(event)
	case "status_updated":
		handleStatusUpdated(event, orders)
	case "deleted":
		log.Printf("Order %d deleted", event.OrderID)
	case "pending_check":
		handlePendingCheck(event, orders)
	default:
		log.Printf("Unknown event type: %s", event.Type)
	}

	if err := msg.Ack(false); err != nil {
		return
	}
}

func processDeadLetterMessage(msg amqp.Delivery) {
	log.Printf("Received dead letter: %s", msg.Body)
	if err := msg.Ack(false); err != nil {
		return
	}
}

func handleOrderCreated(event models.OrderEvent) {
	log.Printf("Handling order created: %d (total %.2f)", event.OrderID, event.Total)
}

func handleStatusUpdated(event models.OrderEvent, orders repositories.OrderRepository) {
	order, err := orders.GetByID(event.OrderID)
	if err != nil {
		log.Printf("Failed to get order %d: %v", event.OrderID, err)
		return
	}
	log.Printf("Handling status update for order %d: %s", order.ID, order.Status)
}

// handlePendingCheck cancels orders still pending when the delayed check
// fires.
func handlePendingCheck(event models.OrderEvent, orders repositories.OrderRepository) {
	order, err := orders.GetByID(event.OrderID)
	if err != nil {
		log.Printf("Failed to get order %d: %v", event.OrderID, err)
		return
	}

	if order.Status == models.StatusPending {
		if err := orders.UpdateStatus(order.ID, models.StatusCanceled); err != nil {
			log.Printf("Failed to auto-cancel order %d: %v", order.ID, err)
			return
		}
		log.Printf("Auto-canceled stale pending order %d", order.ID)
	}
}
