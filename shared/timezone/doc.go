// Package timezone holds the restaurant's wall-clock location.
//
// Booking dates, the day filter on listings and the schedule board all read
// and print times in this location, loaded from APP_TIMEZONE (IANA names
// such as "Asia/Jakarta" or "Europe/London"). An unknown or empty name falls
// back to UTC.
//
//	now := timezone.Now()
//	start, err := timezone.Parse("2006-01-02 15:04", "2024-06-01 19:00")
//	day := timezone.Format(start, "2006-01-02")
package timezone
