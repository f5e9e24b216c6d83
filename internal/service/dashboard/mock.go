package dashboard

import "context"

// MockDashboardService implements Service for unit tests. A non-nil Err is
// returned from every method.
type MockDashboardService struct {
	UpcomingBookings []Booking
	PastBookings     []Booking
	FavoriteList     []Favorite
	Err              error
}

func (m *MockDashboardService) Upcoming(context.Context, string) ([]Booking, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.UpcomingBookings, nil
}

func (m *MockDashboardService) Past(context.Context, string) ([]Booking, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.PastBookings, nil
}

func (m *MockDashboardService) Favorites(context.Context, string) ([]Favorite, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.FavoriteList, nil
}

// Compile-time interface check
var _ Service = (*MockDashboardService)(nil)
