package timezone

import "time"

const DefaultTimezone = "Europe/Lisbon"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseSlot parses a booking slot ("2006-01-02", "15:04") in the tenant's
// timezone.
func ParseSlot(tz, date, hhmm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, Location(tz))
}
