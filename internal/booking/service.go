package booking

import (
	"context"
	"time"

	"tripar/pkg/idgen"
	"tripar/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const referencePrefix = "BK"

type Service struct {
	ids    idgen.Generator
	logger logger.Logger
	tracer trace.Tracer
	now    func() time.Time
}

func NewService(ids idgen.Generator, log logger.Logger) *Service {
	return &Service{
		ids:    ids,
		logger: log,
		tracer: otel.Tracer("tripar/internal/booking"),
		now:    time.Now,
	}
}

// Confirm validates and prices the booking and issues its reference. Nothing
// is stored and no payment is taken.
func (s *Service) Confirm(ctx context.Context, req Request) (*Confirmation, error) {
	_, span := s.tracer.Start(ctx, "booking.Confirm")
	defer span.End()

	if err := Validate(req); err != nil {
		s.logger.Info("booking rejected", logger.Field{Key: "reason", Value: err.Error()})
		return nil, err
	}

	fare := Summary(req.Booking)
	conf := &Confirmation{
		BookingID:   s.ids.Reference(referencePrefix),
		Booking:     req.Booking,
		Passengers:  req.Passengers,
		Contact:     req.Contact,
		Fare:        fare,
		TotalAmount: fare.Total,
		BookingDate: s.now().UTC(),
	}

	span.SetAttributes(
		attribute.String("booking.id", conf.BookingID),
		attribute.Float64("booking.total", conf.TotalAmount),
	)
	s.logger.Info("booking confirmed",
		logger.Field{Key: "booking_id", Value: conf.BookingID},
		logger.Field{Key: "passengers", Value: len(req.Passengers)},
		logger.Field{Key: "total", Value: conf.TotalAmount},
	)
	return conf, nil
}
