package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bakery-storefront/internal/domains/weather/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) FetchByCoordinates(ctx context.Context, lat, lon float64) (*model.Observation, error) {
	args := m.Called(ctx, lat, lon)
	obs, _ := args.Get(0).(*model.Observation)
	return obs, args.Error(1)
}

func (m *mockProvider) FetchByCityName(ctx context.Context, city string) (*model.Observation, error) {
	args := m.Called(ctx, city)
	obs, _ := args.Get(0).(*model.Observation)
	return obs, args.Error(1)
}

type mockPostal struct {
	mock.Mock
}

func (m *mockPostal) LookupCity(ctx context.Context, cep string) (string, error) {
	args := m.Called(ctx, cep)
	return args.String(0), args.Error(1)
}

var fetchErr = errors.New("connection refused")

func newTestService() (*WeatherService, *mockProvider, *mockPostal) {
	provider := &mockProvider{}
	postal := &mockPostal{}
	svc := NewWeatherService(provider, postal, Config{DefaultCity: "São Paulo", Timeout: time.Second})
	return svc, provider, postal
}

func TestRefresh_Coordinates(t *testing.T) {
	svc, provider, _ := newTestService()
	provider.On("FetchByCoordinates", mock.Anything, -22.9, -43.2).Return(&model.Observation{City: "Rio de Janeiro"}, nil)

	obs, err := svc.Refresh(context.Background(), &model.Coordinates{Lat: -22.9, Lon: -43.2})
	require.NoError(t, err)
	assert.Equal(t, "Rio de Janeiro", obs.City)
	provider.AssertNotCalled(t, "FetchByCityName", mock.Anything, mock.Anything)
}

func TestRefresh_FallsBackToDefaultCityOnce(t *testing.T) {
	svc, provider, _ := newTestService()
	provider.On("FetchByCoordinates", mock.Anything, 1.0, 2.0).Return(nil, fetchErr).Once()
	provider.On("FetchByCityName", mock.Anything, "São Paulo").Return(&model.Observation{City: "São Paulo"}, nil).Once()

	obs, err := svc.Refresh(context.Background(), &model.Coordinates{Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", obs.City)
	provider.AssertExpectations(t)
}

func TestRefresh_Unavailable(t *testing.T) {
	svc, provider, _ := newTestService()
	provider.On("FetchByCoordinates", mock.Anything, 1.0, 2.0).Return(nil, fetchErr).Once()
	provider.On("FetchByCityName", mock.Anything, "São Paulo").Return(nil, fetchErr).Once()

	_, err := svc.Refresh(context.Background(), &model.Coordinates{Lat: 1, Lon: 2})
	assert.ErrorIs(t, err, model.ErrWeatherUnavailable)
	provider.AssertNumberOfCalls(t, "FetchByCityName", 1)
}

func TestRefresh_WithoutCoordinatesUsesDefaultCity(t *testing.T) {
	svc, provider, _ := newTestService()
	provider.On("FetchByCityName", mock.Anything, "São Paulo").Return(nil, fetchErr).Once()

	_, err := svc.Refresh(context.Background(), nil)
	assert.ErrorIs(t, err, model.ErrWeatherUnavailable)
	provider.AssertNotCalled(t, "FetchByCoordinates", mock.Anything, mock.Anything, mock.Anything)
	provider.AssertNumberOfCalls(t, "FetchByCityName", 1)
}

func TestRefresh_InvalidCoordinates(t *testing.T) {
	svc, provider, _ := newTestService()

	_, err := svc.Refresh(context.Background(), &model.Coordinates{Lat: 120})
	assert.ErrorIs(t, err, model.ErrInvalidCoordinates)
	provider.AssertNotCalled(t, "FetchByCityName", mock.Anything, mock.Anything)
}

func TestRefresh_AppliesTimeout(t *testing.T) {
	svc, provider, _ := newTestService()
	provider.On("FetchByCityName", mock.Anything, "São Paulo").
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		}).
		Return(&model.Observation{City: "São Paulo"}, nil)

	_, err := svc.Refresh(context.Background(), nil)
	require.NoError(t, err)
}

func TestByCity_NotFound(t *testing.T) {
	svc, provider, _ := newTestService()
	provider.On("FetchByCityName", mock.Anything, "Atlantis").Return(nil, model.ErrCityNotFound)

	_, err := svc.ByCity(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, model.ErrCityNotFound)
}

func TestByPostalCode(t *testing.T) {
	svc, provider, postal := newTestService()
	postal.On("LookupCity", mock.Anything, "01001-000").Return("São Paulo", nil)
	provider.On("FetchByCityName", mock.Anything, "São Paulo").Return(&model.Observation{City: "São Paulo"}, nil)

	obs, err := svc.ByPostalCode(context.Background(), "01001-000")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", obs.City)
}

func TestByPostalCode_NotFound(t *testing.T) {
	svc, provider, postal := newTestService()
	postal.On("LookupCity", mock.Anything, "99999999").Return("", model.ErrPostalCodeNotFound)

	_, err := svc.ByPostalCode(context.Background(), "99999999")
	assert.ErrorIs(t, err, model.ErrPostalCodeNotFound)
	provider.AssertNotCalled(t, "FetchByCityName", mock.Anything, mock.Anything)
}
