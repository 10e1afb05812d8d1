package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tzconv/infras/otel"
	"tzconv/internal/domains/conversion/model"
	"tzconv/internal/domains/conversion/model/dto"
	"tzconv/internal/domains/zone/repository"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/timezone"
)

// Selector asks the user to pick one zone. It blocks until an answer arrives
// or ctx is cancelled.
type Selector interface {
	Select(ctx context.Context, zones []string) (string, error)
}

type Conversion interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
	ListZones(ctx context.Context) ([]string, error)
}

type serviceImpl struct {
	zones    repository.Zone
	selector Selector
	clock    timezone.Clock
	otel     otel.Otel
}

func New(zones repository.Zone, selector Selector, clock timezone.Clock, otel otel.Otel) Conversion {
	return &serviceImpl{
		zones:    zones,
		selector: selector,
		clock:    clock,
		otel:     otel,
	}
}

func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	mode := req.Mode()
	scope.SetAttribute(constant.OtelModeAttributeKey, mode.String())

	if mode == model.ModeNow {
		instant := s.clock.Now()

		return dto.ConvertResponse{Mode: mode, Instant: instant, Results: s.formatDefaults(instant)}, nil
	}

	instant, err := timezone.Parse(req.Timestamp)
	if err != nil {
		return dto.ConvertResponse{Mode: mode}, err //nolint:wrapcheck
	}

	switch mode {
	case model.ModeDefaults:
		return dto.ConvertResponse{Mode: mode, Instant: instant, Results: s.formatDefaults(instant)}, nil
	case model.ModeInteractive:
		zone, err := s.selectZone(ctx)
		if err != nil {
			return dto.ConvertResponse{Mode: mode}, err
		}

		scope.SetAttribute(constant.OtelZoneAttributeKey, zone)

		return s.formatSingle(mode, instant, zone, zone)
	default:
		resolved := timezone.Resolve(req.Zone)
		scope.SetAttribute(constant.OtelZoneAttributeKey, resolved)

		if !s.zones.IsValid(resolved) {
			log.Debug().Str(constant.LogFieldZone, req.Zone).Str("resolved", resolved).Msg("Rejected unrecognized zone")

			return dto.ConvertResponse{Mode: mode}, failure.UnrecognizedZone(req.Zone, resolved) //nolint:wrapcheck
		}

		return s.formatSingle(mode, instant, req.Zone, resolved)
	}
}

func (s *serviceImpl) ListZones(ctx context.Context) (zones []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListZones")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	zones, err = s.zones.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	if len(zones) == 0 {
		return nil, failure.ZoneCatalogUnavailable(nil) //nolint:wrapcheck
	}

	return zones, nil
}

func (s *serviceImpl) selectZone(ctx context.Context) (string, error) {
	zones, err := s.ListZones(ctx)
	if err != nil {
		return constant.Empty, err
	}

	zone, err := s.selector.Select(ctx, zones)
	if err != nil {
		var fail *failure.Failure

		switch {
		case ctx.Err() != nil || errors.Is(err, context.Canceled):
			return constant.Empty, failure.Interrupted(err) //nolint:wrapcheck
		case errors.As(err, &fail):
			return constant.Empty, err
		default:
			return constant.Empty, failure.InteractiveSelectionFailed(err) //nolint:wrapcheck
		}
	}

	if !s.zones.IsValid(zone) {
		return constant.Empty, failure.UnrecognizedZone(zone, zone) //nolint:wrapcheck
	}

	return zone, nil
}

// formatSingle stops at the first error; raw differs from zone when an alias was used.
func (s *serviceImpl) formatSingle(mode model.Mode, instant time.Time, raw, zone string) (dto.ConvertResponse, error) {
	display, err := timezone.Format(instant, zone)
	if err != nil {
		return dto.ConvertResponse{Mode: mode}, err //nolint:wrapcheck
	}

	res := dto.ConvertResponse{
		Mode:    mode,
		Instant: instant,
		Results: []model.Result{{Label: zone, Zone: zone, Display: display}},
	}

	if raw != zone {
		res.Note = dto.SubstitutionNote(raw, zone)
	}

	return res, nil
}

// formatDefaults renders the UTC header and then every default zone. A zone
// that fails keeps its error on its own result.
func (s *serviceImpl) formatDefaults(instant time.Time) []model.Result {
	zones := append([]timezone.NamedZone{{Label: constant.ZoneUTC, Zone: constant.ZoneUTC}}, timezone.DefaultZones()...)
	results := make([]model.Result, 0, len(zones))

	for _, zone := range zones {
		result := model.Result{Label: zone.Label, Zone: zone.Zone}

		result.Display, result.Err = timezone.Format(instant, zone.Zone)
		if result.Err != nil {
			log.Warn().Err(result.Err).Str(constant.LogFieldZone, zone.Zone).Msg("Failed to format default zone")
		}

		results = append(results, result)
	}

	return results
}
