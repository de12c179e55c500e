package booking

type BookingServiceAPI interface {
	CreateBooking(input CreateBookingInput) (*Booking, error)
	GetBookings(query ListBookingsQuery) ([]Booking, int64, error)
	GetBookingByID(id uint64) (*Booking, error)
}
