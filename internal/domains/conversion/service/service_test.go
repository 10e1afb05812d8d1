package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "tzconv/infras/otel/mocks"
	conversionMocks "tzconv/internal/domains/conversion/mocks"
	"tzconv/internal/domains/conversion/model"
	"tzconv/internal/domains/conversion/model/dto"
	"tzconv/internal/domains/conversion/service"
	zoneMocks "tzconv/internal/domains/zone/mocks"
	"tzconv/shared/failure"
	"tzconv/shared/timezone"
)

const sampleTimestamp = "2025-04-01T15:30:00Z"

var sampleInstant = time.Date(2025, 4, 1, 15, 30, 0, 0, time.UTC)

var expectedDefaults = []model.Result{
	{Label: "UTC", Zone: "UTC", Display: "2025-04-01 15:30:00 UTC"},
	{Label: "India", Zone: "Asia/Kolkata", Display: "2025-04-01 21:00:00 IST"},
	{Label: "US Eastern", Zone: "America/New_York", Display: "2025-04-01 11:30:00 EDT"},
	{Label: "US Central", Zone: "America/Chicago", Display: "2025-04-01 10:30:00 CDT"},
	{Label: "US Pacific", Zone: "America/Los_Angeles", Display: "2025-04-01 08:30:00 PDT"},
	{Label: "Singapore", Zone: "Asia/Singapore", Display: "2025-04-01 23:30:00 +08"},
	{Label: "Japan", Zone: "Asia/Tokyo", Display: "2025-04-02 00:30:00 JST"},
}

type fixture struct {
	zones    *zoneMocks.MockZone
	selector *conversionMocks.MockSelector
	otel     *otelMocks.Otel
	svc      service.Conversion
}

func newFixture(t *testing.T, now time.Time) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		zones:    zoneMocks.NewMockZone(ctrl),
		selector: conversionMocks.NewMockSelector(ctrl),
		otel:     otelMocks.NewOtel(),
	}
	f.svc = service.New(f.zones, f.selector, timezone.NewFixedClock(now), f.otel)

	return f
}

func TestConversionService_Now(t *testing.T) {
	f := newFixture(t, sampleInstant)

	res, err := f.svc.Convert(context.Background(), dto.FromArgs(nil))
	require.NoError(t, err)

	assert.Equal(t, model.ModeNow, res.Mode)
	assert.True(t, sampleInstant.Equal(res.Instant))
	assert.Equal(t, expectedDefaults, res.Results)
	assert.Empty(t, res.Note)
	assert.Zero(t, res.Failed())
	assert.Equal(t, []string{"service.Convert"}, f.otel.Spans)
}

func TestConversionService_NowUsesRealClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(zoneMocks.NewMockZone(ctrl), conversionMocks.NewMockSelector(ctrl), timezone.NewSystemClock(), otelMocks.NewOtel())

	res, err := svc.Convert(context.Background(), dto.ConvertRequest{})
	require.NoError(t, err)

	require.Len(t, res.Results, len(timezone.DefaultZones())+1)
	for _, result := range res.Results {
		assert.True(t, result.OK(), "zone %s: %v", result.Zone, result.Err)
		assert.NotEmpty(t, result.Display)
	}
}

func TestConversionService_Defaults(t *testing.T) {
	for _, keyword := range []string{"default", "DEFAULT", "Default"} {
		t.Run(keyword, func(t *testing.T) {
			f := newFixture(t, time.Time{})

			res, err := f.svc.Convert(context.Background(), dto.FromArgs([]string{sampleTimestamp, keyword}))
			require.NoError(t, err)

			assert.Equal(t, model.ModeDefaults, res.Mode)
			assert.Equal(t, expectedDefaults, res.Results)
			assert.Len(t, res.Results, len(timezone.DefaultZones())+1)
		})
	}
}

func TestConversionService_Specific(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		resolved string
		display  string
		wantNote string
	}{
		{
			name:     "alias emits substitution note",
			zone:     "IST",
			resolved: "Asia/Kolkata",
			display:  "2025-04-01 21:00:00 IST",
			wantNote: `interpreting "IST" as Asia/Kolkata`,
		},
		{
			name:     "lowercase alias",
			zone:     "pst",
			resolved: "America/Los_Angeles",
			display:  "2025-04-01 08:30:00 PDT",
			wantNote: `interpreting "pst" as America/Los_Angeles`,
		},
		{
			name:     "ambiguous CST resolves to US Central",
			zone:     "CST",
			resolved: "America/Chicago",
			display:  "2025-04-01 10:30:00 CDT",
			wantNote: `interpreting "CST" as America/Chicago`,
		},
		{
			name:     "canonical name has no note",
			zone:     "Asia/Kolkata",
			resolved: "Asia/Kolkata",
			display:  "2025-04-01 21:00:00 IST",
		},
		{
			name:     "pass-through identifier",
			zone:     "Europe/Helsinki",
			resolved: "Europe/Helsinki",
			display:  "2025-04-01 18:30:00 EEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, time.Time{})
			f.zones.EXPECT().IsValid(tt.resolved).Return(true)

			res, err := f.svc.Convert(context.Background(), dto.FromArgs([]string{sampleTimestamp, tt.zone}))
			require.NoError(t, err)

			assert.Equal(t, model.ModeSpecific, res.Mode)
			require.Len(t, res.Results, 1)
			assert.Equal(t, tt.resolved, res.Results[0].Zone)
			assert.Equal(t, tt.display, res.Results[0].Display)
			assert.Equal(t, tt.wantNote, res.Note)
		})
	}
}

func TestConversionService_Specific_Unrecognized(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		resolved string
	}{
		{name: "unknown identifier", zone: "Mars/Olympus_Mons", resolved: "Mars/Olympus_Mons"},
		{name: "empty zone", zone: "", resolved: ""},
		{name: "alias resolving to an invalid zone shows no note", zone: "sgt", resolved: "Asia/Singapore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, time.Time{})
			f.zones.EXPECT().IsValid(tt.resolved).Return(false)

			res, err := f.svc.Convert(context.Background(), dto.FromArgs([]string{sampleTimestamp, tt.zone}))
			require.Error(t, err)

			assert.True(t, failure.IsKind(err, failure.KindUnrecognizedZone))
			assert.Empty(t, res.Results)
			assert.Empty(t, res.Note)
		})
	}
}

func TestConversionService_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind failure.Kind
	}{
		{
			name: "missing Z in interactive mode does not prompt",
			args: []string{"2025-04-01T15:30:00"},
			kind: failure.KindNotUTCSuffix,
		},
		{
			name: "missing Z with defaults",
			args: []string{"2025-04-01T15:30:00", "default"},
			kind: failure.KindNotUTCSuffix,
		},
		{
			name: "missing Z with zone",
			args: []string{"2025-04-01T15:30:00", "IST"},
			kind: failure.KindNotUTCSuffix,
		},
		{
			name: "invalid calendar date",
			args: []string{"2025-02-30T15:30:00Z", "IST"},
			kind: failure.KindInvalidTimestampFormat,
		},
		{
			name: "garbage in interactive mode",
			args: []string{"yesterdayZ"},
			kind: failure.KindInvalidTimestampFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any call on the catalog or selector fails the test.
			f := newFixture(t, time.Time{})

			res, err := f.svc.Convert(context.Background(), dto.FromArgs(tt.args))
			require.Error(t, err)

			assert.True(t, failure.IsKind(err, tt.kind), "got %v", err)
			assert.Empty(t, res.Results)
		})
	}
}

func TestConversionService_Interactive(t *testing.T) {
	catalog := []string{"America/New_York", "Asia/Tokyo", "UTC"}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantLine  string
	}{
		{
			name: "selected zone is formatted",
			setupMock: func(f fixture) {
				f.zones.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
				f.selector.EXPECT().Select(gomock.Any(), catalog).Return("Asia/Tokyo", nil)
				f.zones.EXPECT().IsValid("Asia/Tokyo").Return(true)
			},
			wantLine: "2025-04-02 00:30:00 JST",
		},
		{
			name: "empty catalog is fatal and does not prompt",
			setupMock: func(f fixture) {
				f.zones.EXPECT().ListAll(gomock.Any()).Return([]string{}, nil)
			},
			wantKind: failure.KindZoneCatalogUnavailable,
		},
		{
			name: "catalog failure propagates",
			setupMock: func(f fixture) {
				f.zones.EXPECT().ListAll(gomock.Any()).Return(nil, failure.ZoneCatalogUnavailable(nil))
			},
			wantKind: failure.KindZoneCatalogUnavailable,
		},
		{
			name: "selector error becomes selection failure",
			setupMock: func(f fixture) {
				f.zones.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
				f.selector.EXPECT().Select(gomock.Any(), catalog).Return("", io.ErrUnexpectedEOF)
			},
			wantKind: failure.KindInteractiveSelectionFailed,
		},
		{
			name: "selector failure kind is kept",
			setupMock: func(f fixture) {
				f.zones.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
				f.selector.EXPECT().Select(gomock.Any(), catalog).Return("", failure.InteractiveSelectionFailed(nil))
			},
			wantKind: failure.KindInteractiveSelectionFailed,
		},
		{
			name: "cancelled selection is an interruption",
			setupMock: func(f fixture) {
				f.zones.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
				f.selector.EXPECT().Select(gomock.Any(), catalog).Return("", context.Canceled)
			},
			wantKind: failure.KindInterrupted,
		},
		{
			name: "selection outside the database is rejected",
			setupMock: func(f fixture) {
				f.zones.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
				f.selector.EXPECT().Select(gomock.Any(), catalog).Return("Bogus/Zone", nil)
				f.zones.EXPECT().IsValid("Bogus/Zone").Return(false)
			},
			wantKind: failure.KindUnrecognizedZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, time.Time{})
			tt.setupMock(f)

			res, err := f.svc.Convert(context.Background(), dto.FromArgs([]string{sampleTimestamp}))

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)
				assert.Empty(t, res.Results)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.ModeInteractive, res.Mode)
			require.Len(t, res.Results, 1)
			assert.Equal(t, tt.wantLine, res.Results[0].Display)
			assert.Empty(t, res.Note)
		})
	}
}

func TestConversionService_Interactive_ContextCancelled(t *testing.T) {
	f := newFixture(t, time.Time{})

	ctx, cancel := context.WithCancel(context.Background())

	f.zones.EXPECT().ListAll(gomock.Any()).Return([]string{"UTC"}, nil)
	f.selector.EXPECT().Select(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []string) (string, error) {
		cancel()

		return "", errors.New("read interrupted")
	})

	_, err := f.svc.Convert(ctx, dto.FromArgs([]string{sampleTimestamp}))
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindInterrupted))
}

func TestConversionService_ListZones(t *testing.T) {
	t.Run("returns catalog", func(t *testing.T) {
		f := newFixture(t, time.Time{})
		f.zones.EXPECT().ListAll(gomock.Any()).Return([]string{"Asia/Tokyo", "UTC"}, nil)

		zones, err := f.svc.ListZones(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Asia/Tokyo", "UTC"}, zones)
	})

	t.Run("empty catalog", func(t *testing.T) {
		f := newFixture(t, time.Time{})
		f.zones.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		_, err := f.svc.ListZones(context.Background())
		assert.True(t, failure.IsKind(err, failure.KindZoneCatalogUnavailable))
	})

	t.Run("wrapped error", func(t *testing.T) {
		f := newFixture(t, time.Time{})
		f.zones.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("disk on fire"))

		_, err := f.svc.ListZones(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk on fire")
	})
}
