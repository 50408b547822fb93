package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eventour-app/event-backend/internal/public/domain"
)

// notifyBookingPlaced pushes a booking notification to the vendor through the
// messenger gateway. Failures are stored in failed_notifications so a worker
// can retry them later.
func (h *Handler) notifyBookingPlaced(ctx context.Context, booking domain.Booking) {
	if strings.TrimSpace(h.messengerEndpoint) == "" {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	message := buildBookingMessage(booking)
	err := h.sendMessengerWithRetry(ctx, h.messengerDestination, booking.VendorID, message, 3, 200*time.Millisecond)
	if err == nil {
		return
	}
	if h.logger != nil {
		h.logger.Printf("booking notification failed booking=%s vendor=%s err=%v", booking.ID, booking.VendorID, err)
	}
	h.persistNotificationFailure(ctx, booking, err, 3)
}

func buildBookingMessage(booking domain.Booking) string {
	var builder strings.Builder
	builder.WriteString("You have a new booking request on Eventour.\n")
	builder.WriteString(fmt.Sprintf("- Listing: %s\n", booking.ListingTitle))
	builder.WriteString(fmt.Sprintf("- Customer: %s", booking.CustomerName))
	if phone := strings.TrimSpace(booking.CustomerPhone); phone != "" {
		builder.WriteString(fmt.Sprintf(" (%s)", phone))
	}
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("- Event date: %s\n", booking.EventDate.Format("2006-01-02")))
	if booking.GuestCount > 0 {
		builder.WriteString(fmt.Sprintf("- Guests: %d\n", booking.GuestCount))
	}
	if booking.Amount > 0 {
		builder.WriteString(fmt.Sprintf("- Quoted amount: %d\n", booking.Amount))
	}
	if note := strings.TrimSpace(booking.Note); note != "" {
		builder.WriteString(fmt.Sprintf("- Note: %s\n", note))
	}
	return builder.String()
}

func (h *Handler) sendMessengerWithRetry(ctx context.Context, destination, userID, text string, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := h.sendMessengerMessage(ctx, destination, userID, text); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return lastErr
}

func (h *Handler) persistNotificationFailure(ctx context.Context, booking domain.Booking, sendErr error, attempts int) {
	if h.failedNotifications == nil || sendErr == nil {
		return
	}
	payload := bson.M{
		"bookingId":     booking.ID,
		"vendorId":      booking.VendorID,
		"vendorName":    booking.VendorName,
		"listingId":     booking.ListingID,
		"listingTitle":  booking.ListingTitle,
		"customerId":    booking.CustomerID,
		"customerName":  booking.CustomerName,
		"customerPhone": booking.CustomerPhone,
		"eventDate":     booking.EventDate,
	}
	doc := bson.M{
		"target":      "vendor_booking_notification",
		"payload":     payload,
		"error":       sendErr.Error(),
		"attempts":    attempts,
		"status":      "pending",
		"createdAt":   time.Now().UTC(),
		"lastTriedAt": time.Now().UTC(),
	}
	if _, err := h.failedNotifications.InsertOne(ctx, doc); err != nil && h.logger != nil {
		h.logger.Printf("failed to persist the notification failure: %v", err)
	}
}

func (h *Handler) sendMessengerMessage(ctx context.Context, destination, userID, bodyText string) error {
	trimmedUserID := strings.TrimSpace(userID)
	if trimmedUserID == "" {
		return errors.New("userID is required")
	}

	payload := map[string]any{
		"userId": trimmedUserID,
		"text":   bodyText,
	}
	if dest := strings.TrimSpace(destination); dest != "" {
		payload["destination"] = dest
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to build the messenger payload: %w", err)
	}

	timeout := h.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.messengerEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build the messenger request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("messenger request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("messenger gateway returned an error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}

	return nil
}
