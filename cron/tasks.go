package cron

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"quotify/config"
)

const TypeBookingComplete = "booking:complete"

// BookingCompletePayload identifies the booking to flip to completed
// once its end instant has passed.
type BookingCompletePayload struct {
	BookingID string `json:"bookingId"`
}

// NewBookingCompleteTask builds the completion task for a booking.
func NewBookingCompleteTask(bookingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(BookingCompletePayload{BookingID: bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion payload: %w", err)
	}
	return asynq.NewTask(TypeBookingComplete, payload), nil
}

// NewTaskClient returns an asynq client on the configured Redis task DB.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
}
